package manager_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-patterns/pkg/entity"
	"github.com/goliatone/go-patterns/pkg/manager"
)

func names[T manager.Named](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name())
	}
	return out
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	books := manager.New[entity.Book]()
	input := []string{"c", "a", "b", "a"}
	for _, name := range input {
		added := books.Add(entity.NewBook(name, "isbn-"+name))
		if added.Name() != name {
			t.Fatalf("add returned %q, want %q", added.Name(), name)
		}
	}

	if books.Len() != len(input) {
		t.Fatalf("expected %d items, got %d", len(input), books.Len())
	}
	if diff := cmp.Diff(input, names(books.List())); diff != "" {
		t.Fatalf("list order mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_DropsEveryMatchAndReturnsFirst(t *testing.T) {
	users := manager.New[entity.User]()
	users.Add(entity.NewUser("ann", 1))
	users.Add(entity.NewUser("bob", 2))
	users.Add(entity.NewUser("ann", 3))

	removed, ok := users.Remove("ann")
	if !ok {
		t.Fatalf("expected ann to be removed")
	}
	if removed.Age() != 1 {
		t.Fatalf("expected first match (age 1), got age %d", removed.Age())
	}
	if _, ok := users.Get("ann"); ok {
		t.Fatalf("expected every ann to be gone")
	}
	if diff := cmp.Diff([]string{"bob"}, names(users.List())); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestGetAndRemove_UnknownNameIsAbsent(t *testing.T) {
	books := manager.New[entity.Book]()
	books.Add(entity.NewBook("Dune", "978-0"))

	if _, ok := books.Get("dune"); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
	if _, ok := books.Remove("Missing"); ok {
		t.Fatalf("remove of unknown name must report absent")
	}
	if books.Len() != 1 {
		t.Fatalf("failed remove must not mutate, got %d items", books.Len())
	}
}

func TestGet_ReturnsFirstOfDuplicates(t *testing.T) {
	books := manager.New[entity.Book]()
	books.Add(entity.NewBook("Dune", "first"))
	books.Add(entity.NewBook("Dune", "second"))

	got, ok := books.Get("Dune")
	if !ok || got.ISBN() != "first" {
		t.Fatalf("expected first duplicate, got %+v (ok=%v)", got, ok)
	}
}

func TestList_ReturnsDetachedCopy(t *testing.T) {
	books := manager.New[entity.Book]()
	books.Add(entity.NewBook("Dune", "978-0"))

	listed := books.List()
	listed[0] = entity.NewBook("Other", "x")

	got, ok := books.Get("Dune")
	if !ok || got.ISBN() != "978-0" {
		t.Fatalf("mutating the listing leaked into the manager")
	}
}

func TestEndToEnd_AddListRemove(t *testing.T) {
	books := manager.New[entity.Book]()
	books.Add(entity.NewBook("Dune", "978-0"))

	listed := books.List()
	if len(listed) != 1 {
		t.Fatalf("expected one book, got %d", len(listed))
	}
	want := `Book with name: "Dune" and isbn: "978-0"`
	if listed[0].Describe() != want {
		t.Fatalf("describe mismatch: %q", listed[0].Describe())
	}

	removed, ok := books.Remove("Dune")
	if !ok || removed != listed[0] {
		t.Fatalf("remove returned %+v (ok=%v)", removed, ok)
	}
	if len(books.List()) != 0 {
		t.Fatalf("expected empty listing after remove")
	}
}
