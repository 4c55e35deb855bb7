// Package document assembles requirements documents. A Builder accumulates
// author, name, project and requirements through chained setters and
// produces a Document snapshot on Build. Instance returns the process-wide
// builder, created on first use and never torn down; NewBuilder returns an
// independent one for callers that inject their own.
package document
