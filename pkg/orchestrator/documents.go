package orchestrator

import (
	"context"
	"fmt"

	"github.com/goliatone/go-patterns/pkg/document"
	"github.com/goliatone/go-patterns/pkg/prompt"
)

// Document loop actions, in menu order.
const (
	ActionAddAuthor       = "Add Author"
	ActionAddName         = "Add Name"
	ActionAddProject      = "Add Project"
	ActionAddRequirements = "Add Requirements"
	ActionCreate          = "Create"
)

// DocumentActions lists the document menu choices.
var DocumentActions = []string{
	ActionAddAuthor,
	ActionAddName,
	ActionAddProject,
	ActionAddRequirements,
	ActionCreate,
	ActionExit,
}

// DocumentMenuHelp is shown when help is requested on the document menu.
const DocumentMenuHelp = "Requirements are added to the document when you choose Create."

// DocumentCLI collects document fields interactively and prints the result
// on Create. Requirements are held locally and handed to the builder only
// when the document is created.
type DocumentCLI struct {
	cfg          config
	builder      *document.Builder
	requirements []document.RequirementDescription
}

// NewDocumentCLI uses document.Instance() unless WithBuilder is supplied.
func NewDocumentCLI(options ...Option) *DocumentCLI {
	cfg := newConfig(options)
	builder := cfg.builder
	if builder == nil {
		builder = document.Instance()
	}
	return &DocumentCLI{
		cfg:     cfg,
		builder: builder,
	}
}

// Run prompts for actions until Create or Exit is chosen. It returns the
// built document and true after Create; Exit yields false.
func (c *DocumentCLI) Run(ctx context.Context) (document.Document, bool, error) {
	for {
		answers, err := prompt.Ask(ctx, c.cfg.driver,
			prompt.Select("action", "What do you want to do?", DocumentActions...).WithHelp(DocumentMenuHelp))
		if err != nil {
			return document.Document{}, false, err
		}

		action := answers.Get("action")
		c.cfg.logger.Debug("document action", "action", action)
		switch action {
		case ActionExit:
			return document.Document{}, false, nil
		case ActionCreate:
			return c.create(), true, nil
		}
		if err := c.dispatch(ctx, action); err != nil {
			return document.Document{}, false, err
		}
	}
}

func (c *DocumentCLI) dispatch(ctx context.Context, action string) error {
	switch action {
	case ActionAddAuthor:
		v, err := c.askOne(ctx, "author", "Document Author?")
		if err != nil {
			return err
		}
		c.cfg.printer.Line("My document's author name is: " + v)
		c.builder.SetAuthor(v)
	case ActionAddName:
		v, err := c.askOne(ctx, "name", "Document name?")
		if err != nil {
			return err
		}
		c.cfg.printer.Line("My document's name is: " + v)
		c.builder.SetName(v)
	case ActionAddProject:
		v, err := c.askOne(ctx, "project", "Project name?")
		if err != nil {
			return err
		}
		c.cfg.printer.Line(fmt.Sprintf("My document's project name is: '%s'", v))
		c.builder.SetProject(v)
	case ActionAddRequirements:
		return c.addRequirement(ctx)
	default:
		return fmt.Errorf("orchestrator: unknown action %q", action)
	}
	return nil
}

func (c *DocumentCLI) askOne(ctx context.Context, name, message string) (string, error) {
	answers, err := prompt.Ask(ctx, c.cfg.driver, prompt.Text(name, message))
	if err != nil {
		return "", err
	}
	return answers.Get(name), nil
}

func (c *DocumentCLI) addRequirement(ctx context.Context) error {
	answers, err := prompt.Ask(ctx, c.cfg.driver,
		prompt.Text("code", "Code number?"),
		prompt.Text("description", "Write a description"),
	)
	if err != nil {
		return err
	}
	c.requirements = append(c.requirements, document.RequirementDescription{
		Code:        answers.Get("code"),
		Description: answers.Get("description"),
	})
	c.cfg.printer.Line("Requirement added!")
	return nil
}

func (c *DocumentCLI) create() document.Document {
	requirements := c.requirements
	if requirements == nil {
		requirements = []document.RequirementDescription{}
	}
	doc := c.builder.SetRequirements(requirements).Build()
	doc.Print(c.cfg.printer)
	return doc
}
