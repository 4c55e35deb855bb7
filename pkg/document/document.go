package document

import (
	"github.com/goliatone/go-patterns/pkg/console"
)

// Placeholder is rendered for fields that were never set.
const Placeholder = "-"

// RequirementDescription is a single requirement row.
type RequirementDescription struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

// Document is the snapshot produced by Builder.Build. Fields that were not
// supplied before Build stay absent.
type Document struct {
	author       *string
	name         *string
	project      *string
	requirements []RequirementDescription
}

// Author returns the author and whether it was set.
func (d Document) Author() (string, bool) { return deref(d.author) }

// Name returns the document name and whether it was set.
func (d Document) Name() (string, bool) { return deref(d.name) }

// Project returns the project and whether it was set.
func (d Document) Project() (string, bool) { return deref(d.project) }

// Requirements returns the requirement rows; nil when never set.
func (d Document) Requirements() []RequirementDescription {
	if d.requirements == nil {
		return nil
	}
	out := make([]RequirementDescription, len(d.requirements))
	copy(out, d.requirements)
	return out
}

// Print renders the header lines followed by the requirements table.
func (d Document) Print(p console.Printer) {
	p.Line("Document: " + display(d.author))
	p.Line("Name: " + display(d.name))
	p.Line("Project: " + display(d.project))
	p.Line("Requirements:")

	rows := make([][]string, 0, len(d.requirements))
	for _, req := range d.requirements {
		rows = append(rows, []string{req.Code, req.Description})
	}
	p.Table([]string{"code", "description"}, rows)
}

func deref(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	return *v, true
}

func display(v *string) string {
	if v == nil {
		return Placeholder
	}
	return *v
}
