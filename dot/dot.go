package dot

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Render writes g to w in graphviz DOT syntax.
//
// The output is deterministic: vertices and edges appear in the sorted
// order the graph snapshots already guarantee, and attribute lists are
// sorted by key. Rendering the same graph twice yields identical bytes,
// so the output diffs cleanly and can be golden-tested.
//
// Vertex IDs are always quoted and escaped, so IDs containing spaces,
// quotes or backslashes round-trip through graphviz unharmed.
//
// Complexity: O(V + E) writes plus O(k log k) per attribute list of size k.
func Render(w io.Writer, g Graph, opts ...Option) error {
	// 1) Validate input.
	if w == nil {
		return ErrWriterNil
	}
	if g == nil {
		return ErrGraphNil
	}
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return options.err
	}

	// 2) Pick the dialect: digraph with arrows or graph with bars.
	keyword, op := "graph", "--"
	if g.Directed() {
		keyword, op = "digraph", "->"
	}

	// 3) Emit through a sticky-error printer so each line reads as a
	//    single statement instead of an error-check ladder.
	p := &printer{w: bufio.NewWriter(w)}
	if options.Name == "" {
		p.printf("%s {\n", keyword)
	} else {
		p.printf("%s %s {\n", keyword, quote(options.Name))
	}
	if options.RankDir != "" {
		p.printf("  rankdir=%s;\n", options.RankDir)
	}

	// 4) Vertices first, one statement each, so isolated vertices
	//    stay visible in the render.
	for _, id := range g.Vertices() {
		p.printf("  %s", quote(id))
		p.attrs(options.VertexAttrs(id))
		p.printf(";\n")
	}

	// 5) Edges in snapshot order. Highlighted edges get the overlay
	//    merged on top of the caller's attributes.
	for _, e := range g.Edges() {
		p.printf("  %s %s %s", quote(e.From), op, quote(e.To))
		p.attrs(mergeHighlight(options.EdgeAttrs(e), options.Highlight, e.ID))
		p.printf(";\n")
	}
	p.printf("}\n")

	// 6) Surface the first write failure, if any.
	if p.err == nil {
		p.err = p.w.Flush()
	}
	if p.err != nil {
		return fmt.Errorf("dot: write: %w", p.err)
	}

	return nil
}

// Marshal renders g into a fresh byte slice. See Render for the
// format guarantees.
func Marshal(g Graph, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, g, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// printer accumulates the first write error and turns the rest of the
// emission into no-ops.
type printer struct {
	w   *bufio.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// attrs renders a bracketed attribute list with keys in sorted order.
// Empty and nil maps render nothing.
func (p *printer) attrs(m map[string]string) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p.printf(" [")
	for i, k := range keys {
		if i > 0 {
			p.printf(", ")
		}
		p.printf("%s=%s", k, quote(m[k]))
	}
	p.printf("]")
}

// mergeHighlight layers the highlight overlay over the caller's edge
// attributes without mutating the caller's map.
func mergeHighlight(m map[string]string, highlight map[string]struct{}, id string) map[string]string {
	if _, ok := highlight[id]; !ok {
		return m
	}
	merged := make(map[string]string, len(m)+2)
	for k, v := range m {
		merged[k] = v
	}
	merged["color"] = "red"
	merged["penwidth"] = "2.0"

	return merged
}

// quote wraps s in double quotes, escaping quotes, backslashes and
// newlines so any vertex or attribute string is a legal DOT ID.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')

	return b.String()
}
