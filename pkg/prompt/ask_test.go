package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-patterns/pkg/prompt"
	"github.com/goliatone/go-patterns/pkg/testsupport"
)

func TestAsk_CollectsAnswersByName(t *testing.T) {
	driver := &testsupport.ScriptedDriver{
		Inputs:  []string{"Dune", "978-0"},
		Choices: []string{"Exit"},
	}

	answers, err := prompt.Ask(context.Background(), driver,
		prompt.Text("name", "Book Name?"),
		prompt.Text("isbn", "Book ISBN?"),
		prompt.Select("action", "What do you want to do?", "Add Book", "Exit"),
	)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}

	want := prompt.Answers{"name": "Dune", "isbn": "978-0", "action": "Exit"}
	if diff := cmp.Diff(want, answers); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Book Name?", "Book ISBN?", "What do you want to do?"}, driver.Messages); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestAsk_SelectRepromptsOnInvalidChoice(t *testing.T) {
	driver := &testsupport.ScriptedDriver{Choices: []string{"Nope", "B"}}

	answers, err := prompt.Ask(context.Background(), driver, prompt.Select("pick", "Pick", "A", "B"))
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answers.Get("pick") != "B" {
		t.Fatalf("expected B, got %q", answers.Get("pick"))
	}
	if len(driver.Infos) != 1 {
		t.Fatalf("expected one invalid-selection notice, got %v", driver.Infos)
	}
}

func TestAsk_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := prompt.Ask(ctx, &testsupport.ScriptedDriver{}, prompt.Select("pick", "Pick")); !errors.Is(err, prompt.ErrEmptyChoices) {
		t.Fatalf("expected ErrEmptyChoices, got %v", err)
	}
	if _, err := prompt.Ask(ctx, &testsupport.ScriptedDriver{}, prompt.Question{Kind: "slider", Name: "x"}); !errors.Is(err, prompt.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := prompt.Ask(ctx, &testsupport.ScriptedDriver{}, prompt.Text("name", "Name?")); !errors.Is(err, testsupport.ErrScriptExhausted) {
		t.Fatalf("expected driver error to propagate, got %v", err)
	}
}

func TestAsk_SelectReturnsInfoError(t *testing.T) {
	infoErr := errors.New("stdout closed")
	driver := &testsupport.ScriptedDriver{
		Choices: []string{"Nope", "B"},
		InfoErr: infoErr,
	}

	_, err := prompt.Ask(context.Background(), driver, prompt.Select("pick", "Pick", "A", "B"))
	if !errors.Is(err, infoErr) {
		t.Fatalf("expected info error, got %v", err)
	}
	if driver.Done() {
		t.Fatalf("select must stop after the failed notice")
	}
}

func TestAsk_ForwardsHelp(t *testing.T) {
	driver := &testsupport.ScriptedDriver{Inputs: []string{"Ann"}, Choices: []string{"A"}}

	_, err := prompt.Ask(context.Background(), driver,
		prompt.Text("name", "Name?").WithHelp("your name"),
		prompt.Select("pick", "Pick", "A").WithHelp("pick one"),
	)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if diff := cmp.Diff([]string{"your name", "pick one"}, driver.Helps); diff != "" {
		t.Fatalf("help mismatch (-want +got):\n%s", diff)
	}
}
