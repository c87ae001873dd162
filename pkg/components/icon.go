package components

import (
	"fmt"
	"sync"

	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/vdom"
)

// iconPaths maps icon names to SVG path data on a 24×24 viewbox.
var (
	iconMu    sync.RWMutex
	iconPaths = map[string]string{
		"close":     "M6 6L18 18M18 6L6 18",
		"chevron":   "M6 9l6 6 6-6",
		"bold":      "M7 4h6a4 4 0 010 8H7zM7 12h7a4 4 0 010 8H7z",
		"italic":    "M10 4h8M6 20h8M14 4l-4 16",
		"underline": "M6 4v7a6 6 0 0012 0V4M5 20h14",
		"link":      "M10 14a5 5 0 007 0l2-2a5 5 0 00-7-7l-1 1M14 10a5 5 0 00-7 0l-2 2a5 5 0 007 7l1-1",
		"list":      "M9 6h12M9 12h12M9 18h12M4 6h.5M4 12h.5M4 18h.5",
		"zoom-in":   "M11 4a7 7 0 100 14 7 7 0 000-14zM21 21l-5-5M11 8v6M8 11h6",
		"zoom-out":  "M11 4a7 7 0 100 14 7 7 0 000-14zM21 21l-5-5M8 11h6",
	}
)

// RegisterIcon adds or replaces a named icon's path data.
func RegisterIcon(name, pathData string) {
	iconMu.Lock()
	iconPaths[name] = pathData
	iconMu.Unlock()
}

// IconProps configures an Icon.
type IconProps struct {
	Name  string
	Size  int    // pixels, default 16
	Color string // default "currentColor"
	Class string
}

// Icon renders a named SVG icon. Unknown names render an empty svg of the
// requested size so layout stays stable.
func Icon(props IconProps) *vdom.VNode {
	if props.Size == 0 {
		props.Size = 16
	}
	if props.Color == "" {
		props.Color = "currentColor"
	}

	iconMu.RLock()
	pathData, known := iconPaths[props.Name]
	iconMu.RUnlock()

	size := fmt.Sprintf("%d", props.Size)
	svg := builder.Svg().
		Class(joinClasses("icon", "icon-"+props.Name, props.Class)).
		Width(size).
		Height(size).
		ViewBox("0 0 24 24").
		Fill("none").
		AriaLabel(props.Name)

	if known {
		svg.Children(
			builder.Path().
				D(pathData).
				Stroke(props.Color).
				StrokeWidth("2").
				Build(),
		)
	}
	return svg.Build()
}
