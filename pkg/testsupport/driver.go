// Package testsupport holds helpers shared by package tests, most notably a
// scripted prompt driver that replays canned answers without a terminal.
package testsupport

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-patterns/pkg/prompt"
)

// ErrScriptExhausted is returned once the driver runs out of scripted answers.
var ErrScriptExhausted = errors.New("testsupport: script exhausted")

// ScriptedDriver implements prompt.Driver from pre-recorded answers. Choices
// are option labels; an unknown label selects index -1.
type ScriptedDriver struct {
	Inputs  []string
	Choices []string

	// InfoErr, when set, is returned by every Info call.
	InfoErr error

	Messages []string
	Helps    []string
	Infos    []string

	inputPos  int
	choicePos int
}

var _ prompt.Driver = (*ScriptedDriver)(nil)

func (s *ScriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	s.Messages = append(s.Messages, cfg.Message)
	s.Helps = append(s.Helps, cfg.Help)
	if s.inputPos >= len(s.Inputs) {
		return "", fmt.Errorf("%w: input %q", ErrScriptExhausted, cfg.Message)
	}
	val := s.Inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *ScriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	s.Messages = append(s.Messages, cfg.Message)
	s.Helps = append(s.Helps, cfg.Help)
	if s.choicePos >= len(s.Choices) {
		return -1, fmt.Errorf("%w: select %q", ErrScriptExhausted, cfg.Message)
	}
	choice := s.Choices[s.choicePos]
	s.choicePos++
	for i, option := range cfg.Options {
		if option == choice {
			return i, nil
		}
	}
	return -1, nil
}

func (s *ScriptedDriver) Info(_ context.Context, msg string) error {
	s.Infos = append(s.Infos, msg)
	return s.InfoErr
}

// Done reports whether every scripted answer was consumed.
func (s *ScriptedDriver) Done() bool {
	return s.inputPos == len(s.Inputs) && s.choicePos == len(s.Choices)
}
