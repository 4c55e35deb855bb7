// Package entity defines the records held by the entity managers. An Entity
// is a closed sum type with two variants, Book and User; the Kind tag is fixed
// at construction and selects which variant-specific fields are meaningful.
package entity
