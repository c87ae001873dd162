// Package html renders virtual trees to HTML strings, used by server-side
// rendering and by component tests.
package html

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/loomui/loom/pkg/vdom"
)

// voidElements cannot have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// booleanAttributes render as bare attribute names when true.
var booleanAttributes = map[string]bool{
	"checked": true, "disabled": true, "readonly": true, "required": true,
	"selected": true, "defer": true, "async": true, "multiple": true,
	"autofocus": true,
}

// Renderer writes VNode trees as HTML.
type Renderer struct {
	w   io.Writer
	err error
}

// New creates a renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render writes the tree rooted at node. The first write error is sticky
// and returned.
func (r *Renderer) Render(node *vdom.VNode) error {
	if node == nil {
		return nil
	}
	r.node(node)
	return r.err
}

// RenderString renders a tree to a string.
func RenderString(node *vdom.VNode) string {
	var sb strings.Builder
	_ = New(&sb).Render(node)
	return sb.String()
}

func (r *Renderer) node(n *vdom.VNode) {
	if r.err != nil {
		return
	}
	switch n.Kind {
	case vdom.KindText:
		r.write(html.EscapeString(n.Text))
	case vdom.KindFragment, vdom.KindPortal:
		// Portals flatten in place on the server; the client relocates them.
		for i := range n.Kids {
			r.node(&n.Kids[i])
		}
	case vdom.KindElement:
		r.element(n)
	}
}

func (r *Renderer) element(n *vdom.VNode) {
	r.write("<" + n.Tag)
	r.attrs(n.Props)

	if voidElements[n.Tag] {
		r.write("/>")
		return
	}
	r.write(">")
	for i := range n.Kids {
		r.node(&n.Kids[i])
	}
	r.write("</" + n.Tag + ">")
}

func (r *Renderer) attrs(props vdom.Props) {
	if len(props) == 0 {
		return
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		// Handlers, refs and keys are client-side concerns.
		if k == "ref" || k == "key" || isEventProp(k) {
			continue
		}
		v := props[k]
		if booleanAttributes[k] {
			if b, ok := v.(bool); ok && b {
				r.write(" " + k)
			}
			continue
		}
		r.write(" " + k + `="` + html.EscapeString(attrValue(v)) + `"`)
	}
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func isEventProp(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

func attrValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
