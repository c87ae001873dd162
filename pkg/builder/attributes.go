package builder

// === Form Attributes ===

// Disabled sets the disabled attribute.
func (b *ElementBuilder) Disabled(disabled bool) *ElementBuilder {
	if disabled {
		b.props["disabled"] = true
	}
	return b
}

// Checked sets the checked attribute.
func (b *ElementBuilder) Checked(checked bool) *ElementBuilder {
	if checked {
		b.props["checked"] = true
	}
	return b
}

// Name sets the name attribute.
func (b *ElementBuilder) Name(name string) *ElementBuilder {
	b.props["name"] = name
	return b
}

// Value sets the value attribute.
func (b *ElementBuilder) Value(value string) *ElementBuilder {
	b.props["value"] = value
	return b
}

// Type sets the type attribute.
func (b *ElementBuilder) Type(t string) *ElementBuilder {
	b.props["type"] = t
	return b
}

// Placeholder sets the placeholder attribute.
func (b *ElementBuilder) Placeholder(placeholder string) *ElementBuilder {
	b.props["placeholder"] = placeholder
	return b
}

// === Link & Media Attributes ===

// Href sets the href attribute.
func (b *ElementBuilder) Href(href string) *ElementBuilder {
	b.props["href"] = href
	return b
}

// Src sets the src attribute.
func (b *ElementBuilder) Src(src string) *ElementBuilder {
	b.props["src"] = src
	return b
}

// Alt sets the alt attribute.
func (b *ElementBuilder) Alt(alt string) *ElementBuilder {
	b.props["alt"] = alt
	return b
}

// Width sets the width attribute.
func (b *ElementBuilder) Width(width string) *ElementBuilder {
	b.props["width"] = width
	return b
}

// Height sets the height attribute.
func (b *ElementBuilder) Height(height string) *ElementBuilder {
	b.props["height"] = height
	return b
}

// === SVG Attributes ===

// ViewBox sets the viewBox attribute.
func (b *ElementBuilder) ViewBox(viewBox string) *ElementBuilder {
	b.props["viewBox"] = viewBox
	return b
}

// D sets the path data attribute.
func (b *ElementBuilder) D(d string) *ElementBuilder {
	b.props["d"] = d
	return b
}

// Fill sets the fill attribute.
func (b *ElementBuilder) Fill(fill string) *ElementBuilder {
	b.props["fill"] = fill
	return b
}

// Stroke sets the stroke attribute.
func (b *ElementBuilder) Stroke(stroke string) *ElementBuilder {
	b.props["stroke"] = stroke
	return b
}

// StrokeWidth sets the stroke-width attribute.
func (b *ElementBuilder) StrokeWidth(w string) *ElementBuilder {
	b.props["stroke-width"] = w
	return b
}

// === Data & Custom Attributes ===

// Data sets a data-* attribute.
func (b *ElementBuilder) Data(key, value string) *ElementBuilder {
	b.props["data-"+key] = value
	return b
}

// Attr sets an arbitrary attribute.
func (b *ElementBuilder) Attr(key string, value any) *ElementBuilder {
	b.props[key] = value
	return b
}

// === Event Handlers ===

// OnFocus sets the onfocus handler.
func (b *ElementBuilder) OnFocus(handler func()) *ElementBuilder {
	b.props["onfocus"] = handler
	return b
}

// OnBlur sets the onblur handler.
func (b *ElementBuilder) OnBlur(handler func()) *ElementBuilder {
	b.props["onblur"] = handler
	return b
}

// OnKeyDown sets the onkeydown handler.
func (b *ElementBuilder) OnKeyDown(handler any) *ElementBuilder {
	b.props["onkeydown"] = handler
	return b
}

// OnMouseDown sets the onmousedown handler.
func (b *ElementBuilder) OnMouseDown(handler any) *ElementBuilder {
	b.props["onmousedown"] = handler
	return b
}

// OnMouseUp sets the onmouseup handler.
func (b *ElementBuilder) OnMouseUp(handler any) *ElementBuilder {
	b.props["onmouseup"] = handler
	return b
}

// OnMouseMove sets the onmousemove handler.
func (b *ElementBuilder) OnMouseMove(handler any) *ElementBuilder {
	b.props["onmousemove"] = handler
	return b
}

// OnWheel sets the onwheel handler.
func (b *ElementBuilder) OnWheel(handler any) *ElementBuilder {
	b.props["onwheel"] = handler
	return b
}

// OnDblClick sets the ondblclick handler.
func (b *ElementBuilder) OnDblClick(handler any) *ElementBuilder {
	b.props["ondblclick"] = handler
	return b
}

// === Refs ===

// Ref sets a callback invoked with the mounted element handle.
func (b *ElementBuilder) Ref(ref any) *ElementBuilder {
	if ref != nil {
		b.props["ref"] = ref
	}
	return b
}
