package state

import (
	"bytes"
	"fmt"
	"io"
)

// Transition is one publish edge of the lifecycle.
type Transition struct {
	From Mode
	To   Mode
}

// Lifecycle discovers the publish edges by driving a silent document from
// Draft until Publish stops changing its mode. The final edge is the
// terminal self-loop.
func Lifecycle() []Transition {
	doc := NewDocument(WithOutput(io.Discard), WithID("lifecycle"))

	var edges []Transition
	seen := map[Mode]bool{}
	for {
		from := doc.State().Mode()
		if seen[from] {
			return edges
		}
		seen[from] = true

		doc.Publish()
		to := doc.State().Mode()
		edges = append(edges, Transition{From: from, To: to})
		if to == from {
			return edges
		}
	}
}

// ExportDOT renders the lifecycle as Graphviz DOT source. The initial mode
// and the terminal mode are filled.
func ExportDOT() string {
	edges := Lifecycle()

	var buf bytes.Buffer
	buf.WriteString(`digraph Document {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	for i, e := range edges {
		style := ""
		switch {
		case i == 0:
			style = ` style=filled fillcolor=lightblue`
		case e.From == e.To:
			style = ` style=filled fillcolor=lightgreen`
		}
		buf.WriteString(fmt.Sprintf("  %q [label=%q%s];\n", e.From, e.From, style))
	}
	for _, e := range edges {
		buf.WriteString(fmt.Sprintf("  %q -> %q [label=\"publish\"];\n", e.From, e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}
