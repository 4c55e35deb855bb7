package orchestrator

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-patterns/pkg/console"
	"github.com/goliatone/go-patterns/pkg/entity"
	"github.com/goliatone/go-patterns/pkg/manager"
	"github.com/goliatone/go-patterns/pkg/prompt"
)

// Entity loop actions, in menu order.
const (
	ActionAddBook    = "Add Book"
	ActionListBooks  = "List Books"
	ActionRemoveBook = "Remove Book"
	ActionAddUser    = "Add User"
	ActionListUsers  = "List Users"
	ActionRemoveUser = "Remove User"
	ActionGetUser    = "Get User"
	ActionGetBook    = "Get Book"
	ActionExit       = "Exit"
)

// EntityActions lists the entity menu choices.
var EntityActions = []string{
	ActionAddBook,
	ActionListBooks,
	ActionRemoveBook,
	ActionAddUser,
	ActionListUsers,
	ActionRemoveUser,
	ActionGetUser,
	ActionGetBook,
	ActionExit,
}

// EntityMenuHelp is shown when help is requested on the entity menu.
const EntityMenuHelp = "Books and users are kept in memory until Exit."

// NotFoundMessage is printed when a get or remove finds no entity.
const NotFoundMessage = "Entity not found"

// EntityCLI drives the book and user managers from an interactive menu.
type EntityCLI struct {
	cfg   config
	books *manager.Manager[entity.Book]
	users *manager.Manager[entity.User]
}

// NewEntityCLI creates the loop with one empty manager per entity kind.
func NewEntityCLI(options ...Option) *EntityCLI {
	return &EntityCLI{
		cfg:   newConfig(options),
		books: manager.New[entity.Book](),
		users: manager.New[entity.User](),
	}
}

// Books exposes the book manager.
func (c *EntityCLI) Books() *manager.Manager[entity.Book] { return c.books }

// Users exposes the user manager.
func (c *EntityCLI) Users() *manager.Manager[entity.User] { return c.users }

// Run prompts for actions until Exit is chosen or the driver fails.
func (c *EntityCLI) Run(ctx context.Context) error {
	for {
		answers, err := prompt.Ask(ctx, c.cfg.driver,
			prompt.Select("action", "What do you want to do?", EntityActions...).WithHelp(EntityMenuHelp))
		if err != nil {
			return err
		}

		action := answers.Get("action")
		c.cfg.logger.Debug("entity action", "action", action)
		if action == ActionExit {
			return nil
		}
		if err := c.dispatch(ctx, action); err != nil {
			return err
		}
	}
}

func (c *EntityCLI) dispatch(ctx context.Context, action string) error {
	switch action {
	case ActionAddBook:
		return c.addBook(ctx)
	case ActionListBooks:
		listEntities(c.cfg.printer, entity.KindBook, c.books)
	case ActionRemoveBook:
		return removeEntity(ctx, c.cfg, "Book Name?", c.books)
	case ActionGetBook:
		return getEntity(ctx, c.cfg, c.books)
	case ActionAddUser:
		return c.addUser(ctx)
	case ActionListUsers:
		listEntities(c.cfg.printer, entity.KindUser, c.users)
	case ActionRemoveUser:
		return removeEntity(ctx, c.cfg, "User Name?", c.users)
	case ActionGetUser:
		return getEntity(ctx, c.cfg, c.users)
	default:
		return fmt.Errorf("orchestrator: unknown action %q", action)
	}
	return nil
}

func (c *EntityCLI) addBook(ctx context.Context) error {
	answers, err := prompt.Ask(ctx, c.cfg.driver,
		prompt.Text("name", "Book Name?"),
		prompt.Text("isbn", "Book ISBN?"),
	)
	if err != nil {
		return err
	}
	book := c.books.Add(entity.NewBook(answers.Get("name"), answers.Get("isbn")))
	c.cfg.printer.Line("Added " + book.Describe())
	return nil
}

func (c *EntityCLI) addUser(ctx context.Context) error {
	answers, err := prompt.Ask(ctx, c.cfg.driver,
		prompt.Text("name", "User Name?"),
		prompt.Text("age", "User Age?"),
	)
	if err != nil {
		return err
	}
	user := c.users.Add(entity.NewUser(answers.Get("name"), c.parseAge(answers.Get("age"))))
	c.cfg.printer.Line("Added " + user.Describe())
	return nil
}

// parseAge accepts any input; text that is not an integer is stored as 0.
func (c *EntityCLI) parseAge(raw string) int {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		c.cfg.logger.Debug("non-numeric age stored as zero", "input", raw)
		return 0
	}
	return age
}

func listEntities[T entity.Entity](p console.Printer, kind entity.Kind, m *manager.Manager[T]) {
	items := m.List()
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, entity.Row(item))
	}
	p.Table(entity.Columns(kind), rows)
}

func removeEntity[T entity.Entity](ctx context.Context, cfg config, message string, m *manager.Manager[T]) error {
	answers, err := prompt.Ask(ctx, cfg.driver, prompt.Text("name", message))
	if err != nil {
		return err
	}
	removed, ok := m.Remove(answers.Get("name"))
	if !ok {
		cfg.printer.Line(NotFoundMessage)
		return nil
	}
	cfg.printer.Line(removed.Describe() + " removed!")
	return nil
}

func getEntity[T entity.Entity](ctx context.Context, cfg config, m *manager.Manager[T]) error {
	answers, err := prompt.Ask(ctx, cfg.driver, prompt.Text("name", "Enter the entity name:"))
	if err != nil {
		return err
	}
	found, ok := m.Get(answers.Get("name"))
	if !ok {
		cfg.printer.Line(NotFoundMessage)
		return nil
	}
	cfg.printer.Line(found.Describe())
	return nil
}
