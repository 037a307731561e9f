// Package catalog dispatches pattern drivers by name.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/comalice/designpatterns/behavioural/state"
)

var (
	ErrNotFound     = errors.New("pattern not found")
	ErrExists       = errors.New("pattern already registered")
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

// Category groups patterns the way the catalog presents them.
type Category int

const (
	Creational Category = iota
	Structural
	Behavioural
)

func (c Category) String() string {
	switch c {
	case Creational:
		return "creational"
	case Structural:
		return "structural"
	case Behavioural:
		return "behavioural"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// DriverFunc runs a pattern's fixed demonstration, writing to w.
type DriverFunc func(ctx context.Context, w io.Writer, logger *zap.Logger) error

// Entry describes one runnable pattern.
type Entry struct {
	Name     string
	Category Category
	Summary  string
	Run      DriverFunc
}

// Catalog holds registered entries. It is not safe for concurrent
// registration; build it up front and read it afterwards.
type Catalog struct {
	entries map[string]Entry
	logger  *zap.Logger
}

// New creates an empty catalog. A nil logger discards logs.
func New(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		entries: map[string]Entry{},
		logger:  logger,
	}
}

// Default returns a catalog with every implemented pattern registered.
func Default(logger *zap.Logger) *Catalog {
	c := New(logger)
	// Registration of static entries cannot fail.
	_ = c.Register(Entry{
		Name:     "state",
		Category: Behavioural,
		Summary:  "Document lifecycle whose behaviour changes with its draft, moderation or published state.",
		Run:      state.Driver,
	})
	return c
}

// Register adds e to the catalog.
func (c *Catalog) Register(e Entry) error {
	if e.Name == "" || e.Run == nil {
		return fmt.Errorf("register %q: %w", e.Name, ErrInvalidEntry)
	}
	if _, exists := c.entries[e.Name]; exists {
		return fmt.Errorf("register %q: %w", e.Name, ErrExists)
	}
	c.entries[e.Name] = e
	return nil
}

// Lookup returns the entry registered under name.
func (c *Catalog) Lookup(name string) (Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("pattern %q: %w", name, ErrNotFound)
	}
	return e, nil
}

// List returns all entries ordered by category, then name.
func (c *Catalog) List() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Run executes the named driver against w.
func (c *Catalog) Run(ctx context.Context, name string, w io.Writer) error {
	e, err := c.Lookup(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.logger.Info("running pattern driver",
		zap.String("pattern", e.Name),
		zap.Stringer("category", e.Category))
	if err := e.Run(ctx, w, c.logger); err != nil {
		return fmt.Errorf("pattern %q: %w", name, err)
	}
	return nil
}
