package document

import "sync"

var (
	instance     *Builder
	instanceOnce sync.Once
)

// Instance returns the shared builder, creating it on the first call. Every
// caller observes and mutates the same state.
func Instance() *Builder {
	instanceOnce.Do(func() {
		instance = NewBuilder()
	})
	return instance
}

// Builder is a mutable accumulator for Document fields. Setters overwrite
// unconditionally and return the builder for chaining.
type Builder struct {
	author       *string
	name         *string
	project      *string
	requirements []RequirementDescription
}

// NewBuilder returns an empty builder that is not shared with Instance.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetAuthor(author string) *Builder {
	b.author = &author
	return b
}

func (b *Builder) SetName(name string) *Builder {
	b.name = &name
	return b
}

func (b *Builder) SetProject(project string) *Builder {
	b.project = &project
	return b
}

// SetRequirements replaces the requirement rows. A nil slice marks them unset.
func (b *Builder) SetRequirements(requirements []RequirementDescription) *Builder {
	if requirements == nil {
		b.requirements = nil
		return b
	}
	b.requirements = make([]RequirementDescription, len(requirements))
	copy(b.requirements, requirements)
	return b
}

// Build copies the current fields into a new Document. Builder state is kept,
// so repeated builds yield equal documents until a setter or Reset runs.
func (b *Builder) Build() Document {
	doc := Document{
		author:  cloneString(b.author),
		name:    cloneString(b.name),
		project: cloneString(b.project),
	}
	if b.requirements != nil {
		doc.requirements = make([]RequirementDescription, len(b.requirements))
		copy(doc.requirements, b.requirements)
	}
	return doc
}

// Reset clears every field.
func (b *Builder) Reset() *Builder {
	*b = Builder{}
	return b
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
