package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrUnknownKind is returned for a Question whose Kind is not supported.
	ErrUnknownKind = errors.New("prompt: unknown question kind")
	// ErrEmptyChoices is returned for a select Question without options.
	ErrEmptyChoices = errors.New("prompt: select question has no options")
)
