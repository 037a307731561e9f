package state

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Document is the context whose behaviour depends on its held DocumentState.
type Document struct {
	id      string
	current DocumentState
	out     io.Writer
	logger  *zap.Logger
	err     error
}

// Option configures a Document.
type Option func(d *Document)

// WithOutput directs rendered text to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(d *Document) {
		d.out = w
	}
}

// WithLogger attaches a logger that records transitions at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(d *Document) {
		d.logger = l
	}
}

// WithID overrides the generated document id.
func WithID(id string) Option {
	return func(d *Document) {
		d.id = id
	}
}

// NewDocument creates a document in Draft.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		id:      uuid.NewString(),
		current: Draft{},
		out:     os.Stdout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	if d.out == nil {
		d.out = io.Discard
	}
	return d
}

// ID returns the document id used in log fields.
func (d *Document) ID() string {
	return d.id
}

// State returns the held variant.
func (d *Document) State() DocumentState {
	return d.current
}

// SetState replaces the held variant. No transition is rejected; a nil
// state is ignored so the document always holds one variant.
func (d *Document) SetState(s DocumentState) {
	if s == nil {
		return
	}
	d.logger.Debug("document state changed",
		zap.String("document", d.id),
		zap.String("from", string(d.current.Mode())),
		zap.String("to", string(s.Mode())))
	d.current = s
}

// Render delegates to the held variant.
func (d *Document) Render() {
	d.current.Render(d)
}

// Publish delegates to the held variant, which may call back into SetState.
func (d *Document) Publish() {
	d.current.Publish(d)
}

// Err returns the first error encountered writing output, if any.
func (d *Document) Err() error {
	return d.err
}

func (d *Document) println(line string) {
	if d.err != nil {
		return
	}
	if _, err := fmt.Fprintln(d.out, line); err != nil {
		d.err = fmt.Errorf("document %s: write output: %w", d.id, err)
	}
}
