package main

import (
	"context"
	"errors"
	"log"

	"github.com/goliatone/go-patterns/pkg/document"
	"github.com/goliatone/go-patterns/pkg/orchestrator"
	"github.com/goliatone/go-patterns/pkg/prompt"
)

func main() {
	cli := orchestrator.NewDocumentCLI(orchestrator.WithBuilder(document.Instance()))
	if _, _, err := cli.Run(context.Background()); err != nil && !errors.Is(err, prompt.ErrAborted) {
		log.Fatalf("document cli: %v", err)
	}
}
