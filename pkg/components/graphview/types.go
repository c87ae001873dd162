// Package graphview renders an interactive force-directed network graph
// on a 2D canvas: iterative layout, pan/zoom viewport, culled drawing and
// pointer/touch/wheel interaction, all driven by one animation loop.
package graphview

import "gonum.org/v1/gonum/spatial/r2"

// Node is one graph vertex. Pos is nil until the placement pass assigns a
// position; no force ever touches an unpositioned node. Target, when set,
// pulls the node toward a fixed point each frame. Edges lists target node
// IDs; an ID that resolves to no node is skipped everywhere without error.
type Node struct {
	ID     string
	Label  string
	Pos    *r2.Vec
	Target *r2.Vec
	Edges  []string
}

// Positioned reports whether the node has been placed.
func (n *Node) Positioned() bool { return n != nil && n.Pos != nil }

// Settings are the layout and viewport tuning parameters. They are fixed
// for the lifetime of a view.
type Settings struct {
	// Repulsion scales the inverse-square force between node pairs.
	Repulsion float64
	// RepulsionRadius is the pair distance beyond which repulsion is off.
	RepulsionRadius float64
	// Attraction scales the edge pull per unit of excess distance.
	Attraction float64
	// MinAttractDistance is the edge length attraction tries to reach;
	// closer endpoints are left alone.
	MinAttractDistance float64
	// SpringFactor is the per-frame fraction of the remaining distance a
	// node moves toward its target point.
	SpringFactor float64

	// InitialSpeed, SpeedDecay and MinSpeed shape the decaying animation
	// speed multiplying repulsion: high at mount so the layout settles
	// fast, decaying toward a floor so it stabilizes.
	InitialSpeed float64
	SpeedDecay   float64
	MinSpeed     float64

	// NodeRadius is the hit-test and default drawing radius.
	NodeRadius float64
	// LabelPad widens node culling bounds to keep labels from popping.
	LabelPad float64

	// MinSeparation is the required distance between a placement
	// candidate and every already-placed node.
	MinSeparation float64
	// PlacementRadius is the base circle radius of the placement pass.
	PlacementRadius float64
	// RadiusStep grows the probe circle when no angular slot is free.
	RadiusStep float64

	// ScaleMin, ScaleMax and ScaleStep bound and quantize zooming.
	ScaleMin  float64
	ScaleMax  float64
	ScaleStep float64
}

// DefaultSettings returns the standard tuning.
func DefaultSettings() Settings {
	return Settings{
		Repulsion:          6000,
		RepulsionRadius:    320,
		Attraction:         0.06,
		MinAttractDistance: 120,
		SpringFactor:       0.08,
		InitialSpeed:       4,
		SpeedDecay:         0.97,
		MinSpeed:           0.5,
		NodeRadius:         8,
		LabelPad:           24,
		MinSeparation:      50,
		PlacementRadius:    120,
		RadiusStep:         60,
		ScaleMin:           0.5,
		ScaleMax:           2.5,
		ScaleStep:          0.1,
	}
}

func (s *Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s == nil {
		return d
	}
	if s.Repulsion != 0 {
		d.Repulsion = s.Repulsion
	}
	if s.RepulsionRadius != 0 {
		d.RepulsionRadius = s.RepulsionRadius
	}
	if s.Attraction != 0 {
		d.Attraction = s.Attraction
	}
	if s.MinAttractDistance != 0 {
		d.MinAttractDistance = s.MinAttractDistance
	}
	if s.SpringFactor != 0 {
		d.SpringFactor = s.SpringFactor
	}
	if s.InitialSpeed != 0 {
		d.InitialSpeed = s.InitialSpeed
	}
	if s.SpeedDecay != 0 {
		d.SpeedDecay = s.SpeedDecay
	}
	if s.MinSpeed != 0 {
		d.MinSpeed = s.MinSpeed
	}
	if s.NodeRadius != 0 {
		d.NodeRadius = s.NodeRadius
	}
	if s.LabelPad != 0 {
		d.LabelPad = s.LabelPad
	}
	if s.MinSeparation != 0 {
		d.MinSeparation = s.MinSeparation
	}
	if s.PlacementRadius != 0 {
		d.PlacementRadius = s.PlacementRadius
	}
	if s.RadiusStep != 0 {
		d.RadiusStep = s.RadiusStep
	}
	if s.ScaleMin != 0 {
		d.ScaleMin = s.ScaleMin
	}
	if s.ScaleMax != 0 {
		d.ScaleMax = s.ScaleMax
	}
	if s.ScaleStep != 0 {
		d.ScaleStep = s.ScaleStep
	}
	return d
}

// Theme holds the default renderer's colors and font.
type Theme struct {
	Background    string
	EdgeColor     string
	EdgeHighlight string
	NodeFill      string
	LabelColor    string
	Font          string
}

// DefaultTheme returns the standard dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background:    "#0b0e14",
		EdgeColor:     "#39424e",
		EdgeHighlight: "#ffcf33",
		NodeFill:      "#6ea8fe",
		LabelColor:    "#eaeef3",
		Font:          "12px sans-serif",
	}
}

func (t *Theme) withDefaults() Theme {
	d := DefaultTheme()
	if t == nil {
		return d
	}
	if t.Background != "" {
		d.Background = t.Background
	}
	if t.EdgeColor != "" {
		d.EdgeColor = t.EdgeColor
	}
	if t.EdgeHighlight != "" {
		d.EdgeHighlight = t.EdgeHighlight
	}
	if t.NodeFill != "" {
		d.NodeFill = t.NodeFill
	}
	if t.LabelColor != "" {
		d.LabelColor = t.LabelColor
	}
	if t.Font != "" {
		d.Font = t.Font
	}
	return d
}
