//go:build !js || !wasm

package modelviewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewerRendersContainer(t *testing.T) {
	node, controls := Viewer(&Options{Src: "scene.glb"})
	require.NotNil(t, node)
	require.NotNil(t, controls)
	assert.Equal(t, "div", node.Tag)
	assert.Equal(t, "loom-modelviewer", node.Props["class"])
}

func TestControlsAreInertOutsideBrowser(t *testing.T) {
	_, controls := Viewer(nil)
	controls.SetCamera(45, 30, 10)
	controls.Reset()
	controls.Dispose()
}
