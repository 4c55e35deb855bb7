package entity

import (
	"fmt"
	"strconv"
)

// Kind tags the concrete variant of an Entity.
type Kind int

const (
	KindBook Kind = iota
	KindUser
)

// String returns the lowercase kind label used in listings.
func (k Kind) String() string {
	switch k {
	case KindBook:
		return "book"
	case KindUser:
		return "user"
	default:
		return "unknown"
	}
}

// Entity is implemented by Book and User only.
type Entity interface {
	Name() string
	Kind() Kind
	Describe() string
	sealed()
}

// Book is a named record carrying an ISBN.
type Book struct {
	name string
	isbn string
}

// NewBook constructs a Book. Any input is accepted, including empty strings.
func NewBook(name, isbn string) Book {
	return Book{name: name, isbn: isbn}
}

func (b Book) Name() string { return b.name }
func (b Book) Kind() Kind   { return KindBook }
func (b Book) ISBN() string { return b.isbn }

// Describe embeds both the name and the ISBN.
func (b Book) Describe() string {
	return fmt.Sprintf("Book with name: \"%s\" and isbn: \"%s\"", b.name, b.isbn)
}

func (Book) sealed() {}

// User is a named record carrying an age.
type User struct {
	name string
	age  int
}

// NewUser constructs a User. Zero and negative ages are kept as given.
func NewUser(name string, age int) User {
	return User{name: name, age: age}
}

func (u User) Name() string { return u.name }
func (u User) Kind() Kind   { return KindUser }
func (u User) Age() int     { return u.age }

// Describe embeds the name only; the age never appears in the description.
func (u User) Describe() string {
	return fmt.Sprintf("User with name: \"%s\"", u.name)
}

func (User) sealed() {}

// Columns returns the table header for a listing of entities of kind k.
func Columns(k Kind) []string {
	switch k {
	case KindBook:
		return []string{"name", "kind", "isbn"}
	case KindUser:
		return []string{"name", "kind", "age"}
	default:
		return []string{"name", "kind"}
	}
}

// Row projects an entity onto the columns returned by Columns(e.Kind()).
func Row(e Entity) []string {
	switch v := e.(type) {
	case Book:
		return []string{v.name, v.Kind().String(), v.isbn}
	case User:
		return []string{v.name, v.Kind().String(), strconv.Itoa(v.age)}
	default:
		return []string{e.Name(), e.Kind().String()}
	}
}
