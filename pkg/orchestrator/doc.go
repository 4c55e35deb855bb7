// Package orchestrator hosts the interactive command loops. EntityCLI drives
// one manager per entity kind; DocumentCLI collects document fields into a
// builder and prints the result on Create. Both loops are iterative, prompt
// through a prompt.Driver and render through a console.Printer, so tests can
// script them end to end.
package orchestrator
