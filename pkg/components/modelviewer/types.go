// Package modelviewer embeds a 3D model scene rendered by the host page's
// JavaScript engine. The Go side owns the container, the option plumbing
// and the imperative camera controls; the WebGL work stays in the host
// engine registered on the window.
package modelviewer

// Options configures the embedded scene.
type Options struct {
	// Src is the model URL (glTF or GLB).
	Src string
	// EngineGlobal names the window property holding the host engine.
	// Empty selects "LoomModelEngine".
	EngineGlobal string
	// AutoRotate spins the camera when the user is not interacting.
	AutoRotate bool
	// Background is a CSS color for the scene clear color.
	Background string
	// OnReady fires once the engine reports the model loaded.
	OnReady func()
}

func (o *Options) engineGlobal() string {
	if o == nil || o.EngineGlobal == "" {
		return "LoomModelEngine"
	}
	return o.EngineGlobal
}
