package state

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func lines(buf *bytes.Buffer) []string {
	s := strings.TrimRight(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestNewDocument_StartsInDraft(t *testing.T) {
	doc := NewDocument(WithOutput(&bytes.Buffer{}))

	require.NotNil(t, doc.State())
	assert.Equal(t, ModeDraft, doc.State().Mode())
	assert.NotEmpty(t, doc.ID())
}

func TestDocument_PublishSequence(t *testing.T) {
	want := []Mode{ModeModeration, ModePublished, ModePublished, ModePublished, ModePublished}

	doc := NewDocument(WithOutput(&bytes.Buffer{}))
	for i, mode := range want {
		doc.Publish()
		assert.Equalf(t, mode, doc.State().Mode(), "after publish #%d", i+1)
	}
}

func TestDocument_RenderAfterPublishes(t *testing.T) {
	tests := []struct {
		publishes int
		want      string
	}{
		{0, "Rendering the document in draft mode."},
		{1, "Rendering the document in moderation mode."},
		{2, "Rendering the document in published mode."},
		{3, "Rendering the document in published mode."},
		{7, "Rendering the document in published mode."},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		doc := NewDocument(WithOutput(&buf))
		for i := 0; i < tt.publishes; i++ {
			doc.Publish()
		}
		buf.Reset()

		doc.Render()
		assert.Equalf(t, []string{tt.want}, lines(&buf), "after %d publishes", tt.publishes)
	}
}

func TestDocument_RenderDoesNotTransition(t *testing.T) {
	doc := NewDocument(WithOutput(&bytes.Buffer{}))
	for i := 0; i < 3; i++ {
		doc.Render()
	}
	assert.Equal(t, ModeDraft, doc.State().Mode())
}

func TestDocument_PublishedIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	doc := NewDocument(WithOutput(&buf))
	doc.Publish()
	doc.Publish()
	buf.Reset()

	for i := 0; i < 4; i++ {
		doc.Publish()
	}

	assert.Equal(t, ModePublished, doc.State().Mode())
	got := lines(&buf)
	require.Len(t, got, 4)
	for _, line := range got {
		assert.Equal(t, "Document is already published.", line)
	}
}

func TestDocument_SetStateIsUnconditional(t *testing.T) {
	doc := NewDocument(WithOutput(&bytes.Buffer{}))
	doc.SetState(Published{})
	assert.Equal(t, ModePublished, doc.State().Mode())

	// Moving backwards is not rejected.
	doc.SetState(Draft{})
	assert.Equal(t, ModeDraft, doc.State().Mode())
}

func TestDocument_SetStateIgnoresNil(t *testing.T) {
	doc := NewDocument(WithOutput(&bytes.Buffer{}))
	doc.SetState(nil)
	require.NotNil(t, doc.State())
	assert.Equal(t, ModeDraft, doc.State().Mode())
}

func TestDocument_LogsTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	doc := NewDocument(
		WithOutput(&bytes.Buffer{}),
		WithLogger(zap.New(core)),
		WithID("doc-1"),
	)

	doc.Render()
	doc.Publish()
	doc.Publish()
	doc.Publish()

	entries := logs.FilterMessage("document state changed").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "doc-1", first["document"])
	assert.Equal(t, "draft", first["from"])
	assert.Equal(t, "moderation", first["to"])

	second := entries[1].ContextMap()
	assert.Equal(t, "moderation", second["from"])
	assert.Equal(t, "published", second["to"])
}

type failingWriter struct {
	writes int
}

var errWriteFailed = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errWriteFailed
}

func TestDocument_WriteErrorIsSticky(t *testing.T) {
	w := &failingWriter{}
	doc := NewDocument(WithOutput(w))

	doc.Render()
	doc.Publish()

	require.ErrorIs(t, doc.Err(), errWriteFailed)
	assert.Equal(t, 1, w.writes)
	// The transition still happens; only output is lost.
	assert.Equal(t, ModeModeration, doc.State().Mode())
}
