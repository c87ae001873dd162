package components

import (
	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/vdom"
)

// ButtonVariant selects the button's visual style.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonDanger    ButtonVariant = "danger"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonSize selects the button's size.
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "small"
	ButtonMedium ButtonSize = "medium"
	ButtonLarge  ButtonSize = "large"
)

// ButtonProps configures a Button.
type ButtonProps struct {
	Text     string
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
	// Loading disables the button and shows a spinner in place of the
	// icon.
	Loading   bool
	Icon      *vdom.VNode
	OnClick   func()
	Class     string
	ID        string
	AriaLabel string
}

// Button renders a button element. Disabled and loading buttons drop
// their click handler entirely so a stale handler can never fire.
func Button(props ButtonProps) *vdom.VNode {
	if props.Variant == "" {
		props.Variant = ButtonPrimary
	}
	if props.Size == "" {
		props.Size = ButtonMedium
	}
	if props.Loading {
		props.Disabled = true
		props.Icon = builder.Span().Class("btn-spinner").Build()
	}

	classes := joinClasses(
		"btn",
		"btn-"+string(props.Variant),
		"btn-"+string(props.Size),
		props.Class,
	)
	if props.Loading {
		classes = joinClasses(classes, "btn-loading")
	}

	btn := builder.Button().
		Class(classes).
		Disabled(props.Disabled)

	if props.ID != "" {
		btn.ID(props.ID)
	}
	if props.AriaLabel != "" {
		btn.AriaLabel(props.AriaLabel)
	}
	if props.OnClick != nil && !props.Disabled {
		btn.OnClick(props.OnClick)
	}
	if props.Icon != nil {
		btn.Children(props.Icon)
	}
	if props.Text != "" {
		btn.Text(props.Text)
	}

	return btn.Build()
}
