package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomui/loom/pkg/reactive"
	"github.com/loomui/loom/pkg/renderer/html"
	"github.com/loomui/loom/pkg/vdom"
)

func TestButton_Defaults(t *testing.T) {
	out := html.RenderString(Button(ButtonProps{Text: "Save"}))

	assert.Contains(t, out, "btn-primary")
	assert.Contains(t, out, "btn-medium")
	assert.Contains(t, out, ">Save</button>")
}

func TestButton_DisabledDropsHandler(t *testing.T) {
	clicked := false
	n := Button(ButtonProps{Text: "x", Disabled: true, OnClick: func() { clicked = true }})

	_, hasHandler := n.Props["onclick"]
	assert.False(t, hasHandler)
	assert.False(t, clicked)
	assert.Contains(t, html.RenderString(n), "disabled")
}

func TestButton_LoadingDisablesAndSpins(t *testing.T) {
	n := Button(ButtonProps{Text: "Save", Loading: true, OnClick: func() {}})

	_, hasHandler := n.Props["onclick"]
	assert.False(t, hasHandler)
	out := html.RenderString(n)
	assert.Contains(t, out, "btn-loading")
	assert.Contains(t, out, "btn-spinner")
	assert.Contains(t, out, "disabled")
}

func TestModal_ClosedRendersNothing(t *testing.T) {
	assert.Nil(t, Modal(ModalProps{Title: "t", IsOpen: false}))
}

func TestModal_OpenStructure(t *testing.T) {
	n := Modal(ModalProps{
		Title:   "Settings",
		IsOpen:  true,
		OnClose: func() {},
		Content: vdom.Text("body"),
	})
	out := html.RenderString(n)

	assert.Contains(t, out, "modal-overlay")
	assert.Contains(t, out, "modal-header")
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "modal-md")
	assert.Contains(t, out, `role="dialog"`)
	assert.Contains(t, out, "body")
}

func TestModal_HideClose(t *testing.T) {
	n := Modal(ModalProps{Title: "t", IsOpen: true, OnClose: func() {}, HideClose: true})
	assert.NotContains(t, html.RenderString(n), "modal-close")
}

func TestConfirm_Buttons(t *testing.T) {
	n := Confirm(ConfirmProps{
		Title:     "Delete node",
		Message:   "Really?",
		Dangerous: true,
	})
	out := html.RenderString(n)

	assert.Contains(t, out, "Confirm")
	assert.Contains(t, out, "Cancel")
	assert.Contains(t, out, "btn-danger")
}

func TestAlert_SingleDismissButton(t *testing.T) {
	dismissed := false
	n := Alert(AlertProps{
		Title:     "Saved",
		Message:   "All changes stored.",
		OnDismiss: func() { dismissed = true },
	})
	out := html.RenderString(n)

	assert.Contains(t, out, "Saved")
	assert.Contains(t, out, ">OK</button>")
	assert.NotContains(t, out, "Cancel")
	assert.False(t, dismissed)
}

func TestDropdown_ClosedHidesMenu(t *testing.T) {
	open := reactive.CreateState(false)
	out := html.RenderString(Dropdown(DropdownProps{
		Label: "File",
		Open:  open,
		Items: []DropdownItem{{ID: "new", Label: "New"}},
	}))

	assert.Contains(t, out, "dropdown-trigger")
	assert.NotContains(t, out, "dropdown-menu")
}

func TestDropdown_OpenShowsItems(t *testing.T) {
	open := reactive.CreateState(true)
	out := html.RenderString(Dropdown(DropdownProps{
		Label: "File",
		Open:  open,
		Items: []DropdownItem{
			{ID: "new", Label: "New"},
			{Separator: true},
			{ID: "quit", Label: "Quit", Disabled: true},
		},
	}))

	assert.Contains(t, out, "dropdown-menu")
	assert.Contains(t, out, "New")
	assert.Contains(t, out, "dropdown-separator")
	assert.Contains(t, out, "is-disabled")
}

func TestDropdown_TriggerTogglesOpen(t *testing.T) {
	open := reactive.CreateState(false)
	n := Dropdown(DropdownProps{Label: "File", Open: open})

	toggle, ok := n.Kids[0].Props["onclick"].(func())
	require.True(t, ok)

	toggle()
	assert.True(t, open.Get())
	toggle()
	assert.False(t, open.Get())
}

func TestDropdown_SelectClosesAndReports(t *testing.T) {
	open := reactive.CreateState(true)
	var selected string
	n := Dropdown(DropdownProps{
		Label:    "File",
		Open:     open,
		Items:    []DropdownItem{{ID: "new", Label: "New"}},
		OnSelect: func(id string) { selected = id },
	})

	menu := n.Kids[1]
	onClick, ok := menu.Kids[0].Props["onclick"].(func())
	require.True(t, ok)

	onClick()
	assert.Equal(t, "new", selected)
	assert.False(t, open.Get())
}

func TestDragController_Drag(t *testing.T) {
	c := NewDragController(Frame{X: 10, Y: 10, W: 100, H: 80})

	c.DragStart(50, 50)
	c.PointerMove(60, 45)
	c.PointerUp()

	f := c.Frame()
	assert.InDelta(t, 20, f.X, 1e-9)
	assert.InDelta(t, 5, f.Y, 1e-9)
	assert.InDelta(t, 100, f.W, 1e-9)
}

func TestDragController_MoveWhileIdleIsNoop(t *testing.T) {
	c := NewDragController(Frame{X: 10, Y: 10, W: 100, H: 80})
	c.PointerMove(500, 500)
	assert.Equal(t, Frame{X: 10, Y: 10, W: 100, H: 80}, c.Frame())
}

func TestDragController_ResizeRespectsMinimum(t *testing.T) {
	c := NewDragController(Frame{X: 0, Y: 0, W: 100, H: 80})

	c.ResizeStart(100, 80)
	c.PointerMove(0, 0)

	f := c.Frame()
	assert.InDelta(t, c.MinW, f.W, 1e-9)
	assert.InDelta(t, c.MinH, f.H, 1e-9)
}

func TestDragController_BoundsClamp(t *testing.T) {
	c := NewDragController(Frame{X: 0, Y: 0, W: 100, H: 80})
	c.Bounds = &Frame{X: 0, Y: 0, W: 400, H: 300}

	c.DragStart(0, 0)
	c.PointerMove(1000, 1000)

	f := c.Frame()
	assert.InDelta(t, 300, f.X, 1e-9) // 400 - 100
	assert.InDelta(t, 220, f.Y, 1e-9) // 300 - 80
}

func TestDraggable_RendersFrameStyle(t *testing.T) {
	c := NewDragController(Frame{X: 15, Y: 25, W: 200, H: 120})
	out := html.RenderString(Draggable(DraggableProps{
		Controller: c,
		Title:      "Palette",
		Resizable:  true,
	}))

	assert.Contains(t, out, "left:15px")
	assert.Contains(t, out, "top:25px")
	assert.Contains(t, out, "width:200px")
	assert.Contains(t, out, "draggable-resize-handle")
	assert.Contains(t, out, "Palette")
}

func TestIcon_KnownName(t *testing.T) {
	out := html.RenderString(Icon(IconProps{Name: "bold"}))

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, `width="16"`)
	assert.Contains(t, out, "icon-bold")
}

func TestIcon_UnknownNameRendersEmptySvg(t *testing.T) {
	out := html.RenderString(Icon(IconProps{Name: "no-such-icon", Size: 24}))

	assert.Contains(t, out, "<svg")
	assert.NotContains(t, out, "<path")
	assert.Contains(t, out, `width="24"`)
}

func TestRegisterIcon(t *testing.T) {
	RegisterIcon("custom-test", "M1 1L2 2")
	out := html.RenderString(Icon(IconProps{Name: "custom-test"}))
	assert.Contains(t, out, "M1 1L2 2")
}

func TestToolbar_GroupsAndSeparators(t *testing.T) {
	out := html.RenderString(Toolbar(ToolbarProps{Groups: DefaultToolbarGroups()}))

	assert.Contains(t, out, `role="toolbar"`)
	assert.Contains(t, out, "toolbar-separator")
	assert.Contains(t, out, `aria-label="Bold"`)
	assert.Contains(t, out, `aria-label="Insert link"`)
}

func TestToolbar_ActiveHighlight(t *testing.T) {
	out := html.RenderString(Toolbar(ToolbarProps{
		Groups: []ToolbarGroup{{Buttons: []ToolbarButton{
			{Command: CmdBold, Icon: "bold", Label: "Bold"},
		}}},
		Active: map[EditorCommand]bool{CmdBold: true},
	}))
	assert.Contains(t, out, "is-active")
}

func TestToolbar_EmitsCommand(t *testing.T) {
	var got EditorCommand
	n := Toolbar(ToolbarProps{
		Groups: []ToolbarGroup{{Buttons: []ToolbarButton{
			{Command: CmdItalic, Icon: "italic", Label: "Italic"},
		}}},
		OnCommand: func(cmd EditorCommand, arg string) { got = cmd },
	})

	onClick, ok := n.Kids[0].Props["onclick"].(func())
	require.True(t, ok)
	onClick()
	assert.Equal(t, CmdItalic, got)
}
