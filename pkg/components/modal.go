package components

import (
	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/vdom"
)

// ModalProps configures a Modal.
type ModalProps struct {
	Title          string
	Content        *vdom.VNode
	Footer         *vdom.VNode
	IsOpen         bool
	OnClose        func()
	Size           string // "sm", "md", "lg", "full"
	CloseOnOverlay bool   // close when the backdrop is clicked
	HideClose      bool   // suppress the header close button
	Class          string
	ID             string
}

// Modal renders a dialog above a backdrop. A closed modal renders nothing;
// open/closed is the caller's state, typically a reactive signal.
func Modal(props ModalProps) *vdom.VNode {
	if !props.IsOpen {
		return nil
	}
	if props.Size == "" {
		props.Size = "md"
	}

	overlay := builder.Div().Class("modal-overlay")
	if props.CloseOnOverlay && props.OnClose != nil {
		overlay.OnClick(props.OnClose)
	}

	var sections []*vdom.VNode

	if props.Title != "" || !props.HideClose {
		header := builder.Div().Class("modal-header")
		if props.Title != "" {
			header.Children(builder.H2().Class("modal-title").Text(props.Title).Build())
		}
		if !props.HideClose && props.OnClose != nil {
			header.Children(
				builder.Button().
					Class("modal-close").
					AriaLabel("Close dialog").
					OnClick(props.OnClose).
					Text("×").
					Build(),
			)
		}
		sections = append(sections, header.Build())
	}

	if props.Content != nil {
		sections = append(sections,
			builder.Div().Class("modal-body").Children(props.Content).Build())
	}
	if props.Footer != nil {
		sections = append(sections,
			builder.Div().Class("modal-footer").Children(props.Footer).Build())
	}

	dialog := builder.Div().
		Class(joinClasses("modal", "modal-"+props.Size, props.Class)).
		Role("dialog").
		Children(sections...)
	if props.ID != "" {
		dialog.ID(props.ID)
	}

	return builder.Div().
		Class("modal-container").
		Children(overlay.Build(), dialog.Build()).
		Build()
}

// AlertProps configures an Alert dialog.
type AlertProps struct {
	Title     string
	Message   string
	OnDismiss func()
	// DismissText defaults to "OK".
	DismissText string
}

// Alert renders a single-button notice dialog on top of Modal.
func Alert(props AlertProps) *vdom.VNode {
	if props.DismissText == "" {
		props.DismissText = "OK"
	}

	footer := builder.Div().Class("alert-actions").Children(
		Button(ButtonProps{
			Text:    props.DismissText,
			Variant: ButtonPrimary,
			OnClick: props.OnDismiss,
		}),
	).Build()

	return Modal(ModalProps{
		Title:   props.Title,
		Content: builder.P().Text(props.Message).Build(),
		Footer:  footer,
		IsOpen:  true,
		OnClose: props.OnDismiss,
		Size:    "sm",
		Class:   "alert-modal",
	})
}

// ConfirmProps configures a Confirm dialog.
type ConfirmProps struct {
	Title       string
	Message     string
	OnConfirm   func()
	OnCancel    func()
	ConfirmText string
	CancelText  string
	Dangerous   bool
}

// Confirm renders a two-button confirmation dialog on top of Modal.
func Confirm(props ConfirmProps) *vdom.VNode {
	if props.ConfirmText == "" {
		props.ConfirmText = "Confirm"
	}
	if props.CancelText == "" {
		props.CancelText = "Cancel"
	}

	variant := ButtonPrimary
	if props.Dangerous {
		variant = ButtonDanger
	}

	footer := builder.Div().Class("confirm-actions").Children(
		Button(ButtonProps{
			Text:    props.CancelText,
			Variant: ButtonSecondary,
			OnClick: props.OnCancel,
		}),
		Button(ButtonProps{
			Text:    props.ConfirmText,
			Variant: variant,
			OnClick: props.OnConfirm,
		}),
	).Build()

	return Modal(ModalProps{
		Title:          props.Title,
		Content:        builder.P().Text(props.Message).Build(),
		Footer:         footer,
		IsOpen:         true,
		OnClose:        props.OnCancel,
		Size:           "sm",
		CloseOnOverlay: true,
		Class:          "confirm-modal",
	})
}
