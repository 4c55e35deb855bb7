package main

import (
	"context"
	"errors"
	"log"

	"github.com/goliatone/go-patterns/pkg/orchestrator"
	"github.com/goliatone/go-patterns/pkg/prompt"
)

func main() {
	cli := orchestrator.NewEntityCLI()
	if err := cli.Run(context.Background()); err != nil && !errors.Is(err, prompt.ErrAborted) {
		log.Fatalf("entity cli: %v", err)
	}
}
