package components

import (
	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/vdom"
)

// EditorCommand is a rich-text editing command the toolbar can emit.
type EditorCommand string

const (
	CmdBold          EditorCommand = "bold"
	CmdItalic        EditorCommand = "italic"
	CmdUnderline     EditorCommand = "underline"
	CmdUnorderedList EditorCommand = "insertUnorderedList"
	CmdOrderedList   EditorCommand = "insertOrderedList"
	CmdCreateLink    EditorCommand = "createLink"
	CmdUndo          EditorCommand = "undo"
	CmdRedo          EditorCommand = "redo"
)

// ToolbarButton is a command button in a toolbar group.
type ToolbarButton struct {
	Command  EditorCommand
	Icon     string // icon name, see Icon
	Label    string // accessible label
	Disabled bool
}

// ToolbarGroup is a run of buttons separated from neighbouring groups.
type ToolbarGroup struct {
	Buttons []ToolbarButton
}

// ToolbarProps configures an editor toolbar.
type ToolbarProps struct {
	Groups []ToolbarGroup
	// Active holds the commands currently in effect at the selection
	// (e.g. bold while the caret is in bold text).
	Active map[EditorCommand]bool
	// OnCommand receives the command to execute against the host editor.
	// The arg is command-specific, e.g. the URL for CmdCreateLink.
	OnCommand func(cmd EditorCommand, arg string)
	Class     string
	ID        string
}

// DefaultToolbarGroups is the standard formatting layout.
func DefaultToolbarGroups() []ToolbarGroup {
	return []ToolbarGroup{
		{Buttons: []ToolbarButton{
			{Command: CmdBold, Icon: "bold", Label: "Bold"},
			{Command: CmdItalic, Icon: "italic", Label: "Italic"},
			{Command: CmdUnderline, Icon: "underline", Label: "Underline"},
		}},
		{Buttons: []ToolbarButton{
			{Command: CmdUnorderedList, Icon: "list", Label: "Bullet list"},
			{Command: CmdOrderedList, Icon: "list", Label: "Numbered list"},
		}},
		{Buttons: []ToolbarButton{
			{Command: CmdCreateLink, Icon: "link", Label: "Insert link"},
		}},
	}
}

// Toolbar renders a rich-text editor toolbar. It owns no editor state:
// commands go out through OnCommand and active highlighting comes in
// through Active.
func Toolbar(props ToolbarProps) *vdom.VNode {
	root := builder.Div().
		Class(joinClasses("toolbar", props.Class)).
		Role("toolbar")
	if props.ID != "" {
		root.ID(props.ID)
	}

	for gi, group := range props.Groups {
		if gi > 0 {
			root.Children(builder.Span().Class("toolbar-separator").Role("separator").Build())
		}
		for _, btn := range group.Buttons {
			root.Children(toolbarButton(btn, props))
		}
	}
	return root.Build()
}

func toolbarButton(btn ToolbarButton, props ToolbarProps) *vdom.VNode {
	classes := []string{"toolbar-btn"}
	if props.Active[btn.Command] {
		classes = append(classes, "is-active")
	}

	cmd := btn.Command
	var onClick func()
	if props.OnCommand != nil && !btn.Disabled {
		onClick = func() { props.OnCommand(cmd, "") }
	}

	return Button(ButtonProps{
		Variant:   ButtonGhost,
		Size:      ButtonSmall,
		Disabled:  btn.Disabled,
		Icon:      Icon(IconProps{Name: btn.Icon}),
		OnClick:   onClick,
		Class:     joinClasses(classes...),
		AriaLabel: btn.Label,
	})
}
