// Package components is Loom's built-in component library: buttons,
// modals, dropdowns, draggable surfaces, SVG icons and a rich-text
// toolbar. Components are plain functions from a props struct to a
// virtual tree; interactive state lives in reactive signals captured by
// their handlers.
package components

import (
	"strings"

	"github.com/loomui/loom/pkg/styling"
)

// baseCSS is the library's structural stylesheet. Visual theming is the
// host application's job; this covers only what the components need to
// function (overlay stacking, drag surfaces, toolbar rows).
const baseCSS = `
.modal-container { position: fixed; inset: 0; z-index: 100; }
.modal-overlay { position: absolute; inset: 0; background: rgba(0,0,0,0.5); }
.modal { position: relative; margin: 10vh auto; background: #fff; }
.draggable { position: absolute; user-select: none; }
.draggable-resize-handle { position: absolute; right: 0; bottom: 0; cursor: se-resize; }
.dropdown { position: relative; display: inline-block; }
.dropdown-menu { position: absolute; top: 100%; left: 0; z-index: 50; }
.toolbar { display: flex; align-items: center; gap: 2px; }
.toolbar-separator { width: 1px; align-self: stretch; }
`

// BaseSheet is the registered base stylesheet; hosts emit it through
// styling.AllCSS or the dev server.
var BaseSheet = styling.StyleAndRegister(baseCSS)

func joinClasses(classes ...string) string {
	nonEmpty := classes[:0]
	for _, c := range classes {
		if c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	return strings.Join(nonEmpty, " ")
}
