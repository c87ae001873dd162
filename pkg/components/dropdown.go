package components

import (
	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/reactive"
	"github.com/loomui/loom/pkg/vdom"
)

// DropdownItem is one entry in a dropdown menu. A Separator renders as a
// rule and ignores the other fields.
type DropdownItem struct {
	ID        string
	Label     string
	Icon      *vdom.VNode
	Disabled  bool
	Separator bool
}

// DropdownProps configures a Dropdown.
type DropdownProps struct {
	Label    string
	Items    []DropdownItem
	Open     *reactive.State[bool]
	OnSelect func(id string)
	Class    string
	ID       string
}

// Dropdown renders a trigger button and, while open, a menu of items.
// The open flag is caller-owned state so several dropdowns can coordinate
// (e.g. a menubar closing siblings).
func Dropdown(props DropdownProps) *vdom.VNode {
	open := props.Open != nil && props.Open.Get()

	trigger := builder.Button().
		Class("dropdown-trigger").
		AriaLabel(props.Label).
		Attr("aria-expanded", open).
		OnClick(func() {
			if props.Open != nil {
				props.Open.Update(func(v bool) bool { return !v })
			}
		}).
		Text(props.Label).
		Build()

	root := builder.Div().Class(joinClasses("dropdown", props.Class))
	if props.ID != "" {
		root.ID(props.ID)
	}
	root.Children(trigger)

	if open {
		menu := builder.Ul().Class("dropdown-menu").Role("menu")
		for _, item := range props.Items {
			menu.Children(dropdownItem(item, props))
		}
		root.Children(menu.Build())
	}

	return root.Build()
}

func dropdownItem(item DropdownItem, props DropdownProps) *vdom.VNode {
	if item.Separator {
		return builder.Li().Class("dropdown-separator").Role("separator").Build()
	}

	li := builder.Li().
		Class(joinClasses("dropdown-item", disabledClass(item.Disabled))).
		Role("menuitem").
		Key(item.ID)

	if !item.Disabled {
		id := item.ID
		li.OnClick(func() {
			if props.Open != nil {
				props.Open.Set(false)
			}
			if props.OnSelect != nil {
				props.OnSelect(id)
			}
		})
	}
	if item.Icon != nil {
		li.Children(item.Icon)
	}
	return li.Text(item.Label).Build()
}

func disabledClass(disabled bool) string {
	if disabled {
		return "is-disabled"
	}
	return ""
}
