// Package builder provides a fluent API for constructing virtual DOM trees.
package builder

import (
	"github.com/loomui/loom/pkg/vdom"
)

// ElementBuilder accumulates props and children for one element and
// produces an immutable VNode with Build.
type ElementBuilder struct {
	tag   string
	props vdom.Props
	kids  []*vdom.VNode
}

// El starts a builder for an arbitrary tag.
func El(tag string) *ElementBuilder {
	return &ElementBuilder{tag: tag, props: vdom.Props{}}
}

// Div starts a <div> builder.
func Div() *ElementBuilder { return El("div") }

// Span starts a <span> builder.
func Span() *ElementBuilder { return El("span") }

// P starts a <p> builder.
func P() *ElementBuilder { return El("p") }

// H1 starts an <h1> builder.
func H1() *ElementBuilder { return El("h1") }

// H2 starts an <h2> builder.
func H2() *ElementBuilder { return El("h2") }

// H3 starts an <h3> builder.
func H3() *ElementBuilder { return El("h3") }

// Button starts a <button> builder.
func Button() *ElementBuilder { return El("button") }

// Input starts an <input> builder.
func Input() *ElementBuilder { return El("input") }

// Label starts a <label> builder.
func Label() *ElementBuilder { return El("label") }

// A starts an <a> builder.
func A() *ElementBuilder { return El("a") }

// Ul starts a <ul> builder.
func Ul() *ElementBuilder { return El("ul") }

// Li starts an <li> builder.
func Li() *ElementBuilder { return El("li") }

// Canvas starts a <canvas> builder.
func Canvas() *ElementBuilder { return El("canvas") }

// Svg starts an <svg> builder.
func Svg() *ElementBuilder { return El("svg") }

// Path starts an SVG <path> builder.
func Path() *ElementBuilder { return El("path") }

// Section starts a <section> builder.
func Section() *ElementBuilder { return El("section") }

// Nav starts a <nav> builder.
func Nav() *ElementBuilder { return El("nav") }

// Class sets the class attribute.
func (b *ElementBuilder) Class(class string) *ElementBuilder {
	b.props["class"] = class
	return b
}

// ID sets the id attribute.
func (b *ElementBuilder) ID(id string) *ElementBuilder {
	b.props["id"] = id
	return b
}

// Style sets the inline style attribute.
func (b *ElementBuilder) Style(style string) *ElementBuilder {
	b.props["style"] = style
	return b
}

// Key sets the reconciliation key.
func (b *ElementBuilder) Key(key string) *ElementBuilder {
	b.props["key"] = key
	return b
}

// Title sets the title attribute.
func (b *ElementBuilder) Title(title string) *ElementBuilder {
	b.props["title"] = title
	return b
}

// AriaLabel sets the aria-label attribute.
func (b *ElementBuilder) AriaLabel(label string) *ElementBuilder {
	b.props["aria-label"] = label
	return b
}

// Role sets the role attribute.
func (b *ElementBuilder) Role(role string) *ElementBuilder {
	b.props["role"] = role
	return b
}

// Text appends a text child.
func (b *ElementBuilder) Text(text string) *ElementBuilder {
	b.kids = append(b.kids, vdom.Text(text))
	return b
}

// Children appends child nodes; nils are skipped.
func (b *ElementBuilder) Children(children ...*vdom.VNode) *ElementBuilder {
	for _, c := range children {
		if c != nil {
			b.kids = append(b.kids, c)
		}
	}
	return b
}

// Child appends a single child node.
func (b *ElementBuilder) Child(child *vdom.VNode) *ElementBuilder {
	return b.Children(child)
}

// OnClick sets the onclick handler.
func (b *ElementBuilder) OnClick(handler func()) *ElementBuilder {
	if handler != nil {
		b.props["onclick"] = handler
	}
	return b
}

// Build finalizes the element into a VNode.
func (b *ElementBuilder) Build() *vdom.VNode {
	props := b.props
	if len(props) == 0 {
		props = nil
	}
	return vdom.Element(b.tag, props, b.kids...)
}
