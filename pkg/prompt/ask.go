// Package prompt is the input service used by the command loops. Callers
// describe what they need as a list of Questions and receive Answers keyed by
// each question's Name. Select answers are always one of the supplied options.
package prompt

import (
	"context"
	"fmt"
)

// Kind distinguishes free-text from single-choice questions.
type Kind string

const (
	KindText   Kind = "text"
	KindSelect Kind = "select"
)

// Question describes one prompt.
type Question struct {
	Kind    Kind
	Name    string
	Message string
	Help    string
	Options []string
}

// Text builds a free-text question.
func Text(name, message string) Question {
	return Question{Kind: KindText, Name: name, Message: message}
}

// Select builds a single-choice question.
func Select(name, message string, options ...string) Question {
	return Question{Kind: KindSelect, Name: name, Message: message, Options: options}
}

// WithHelp returns a copy of q carrying help text shown on request.
func (q Question) WithHelp(help string) Question {
	q.Help = help
	return q
}

// Answers maps question names to entered values.
type Answers map[string]string

// Get returns the answer for name, or "" when it was not asked.
func (a Answers) Get(name string) string {
	return a[name]
}

// Ask runs each question in order against driver. It blocks until every
// answer is supplied; the only early exits are driver errors and ctx.
func Ask(ctx context.Context, driver Driver, questions ...Question) (Answers, error) {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		switch q.Kind {
		case KindText, "":
			val, err := driver.Input(ctx, InputConfig{Message: q.Message, Help: q.Help})
			if err != nil {
				return nil, err
			}
			answers[q.Name] = val
		case KindSelect:
			val, err := askSelect(ctx, driver, q)
			if err != nil {
				return nil, err
			}
			answers[q.Name] = val
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, q.Kind)
		}
	}
	return answers, nil
}

func askSelect(ctx context.Context, driver Driver, q Question) (string, error) {
	if len(q.Options) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyChoices, q.Name)
	}
	for {
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      q.Message,
			Options:      q.Options,
			DefaultIndex: -1,
			Help:         q.Help,
		})
		if err != nil {
			return "", err
		}
		if idx >= 0 && idx < len(q.Options) {
			return q.Options[idx], nil
		}
		if err := driver.Info(ctx, fmt.Sprintf("Invalid %s selection", q.Name)); err != nil {
			return "", err
		}
	}
}
