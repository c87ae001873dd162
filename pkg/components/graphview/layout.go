package graphview

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Engine runs the force-directed layout. It owns no goroutines; the view
// calls Step once per animation frame. Forces only ever move nodes that
// the placement pass has positioned.
type Engine struct {
	nodes []*Node
	byID  map[string]*Node
	cfg   Settings
	speed float64
}

// NewEngine builds an engine over nodes. Settings fields left zero take
// their defaults.
func NewEngine(nodes []*Node, cfg *Settings) *Engine {
	e := &Engine{
		nodes: nodes,
		byID:  make(map[string]*Node, len(nodes)),
		cfg:   cfg.withDefaults(),
	}
	e.speed = e.cfg.InitialSpeed
	for _, n := range nodes {
		e.byID[n.ID] = n
	}
	return e
}

// Nodes returns the engine's node slice.
func (e *Engine) Nodes() []*Node { return e.nodes }

// Lookup returns the node with the given ID, or nil.
func (e *Engine) Lookup(id string) *Node { return e.byID[id] }

// Settings returns the resolved tuning parameters.
func (e *Engine) Settings() Settings { return e.cfg }

// Speed returns the current animation speed multiplier.
func (e *Engine) Speed() float64 { return e.speed }

// Step advances the layout one frame: place any nodes that appeared
// unpositioned, apply repulsion and attraction, pull sprung nodes toward
// their targets, then decay the animation speed toward its floor.
func (e *Engine) Step(center r2.Vec) {
	e.Place(center)
	e.repulse()
	e.attract()
	e.spring()
	e.speed = math.Max(e.speed*e.cfg.SpeedDecay, e.cfg.MinSpeed)
}

// Place assigns positions to every unpositioned node and leaves positioned
// nodes untouched, so calling it again is a no-op until new nodes appear.
// Leaf nodes (no outgoing edges) go on a circle around center; the rest
// are placed near an already-positioned source by probing angular slots.
func (e *Engine) Place(center r2.Vec) {
	var leaves []*Node
	for _, n := range e.nodes {
		if len(n.Edges) == 0 {
			leaves = append(leaves, n)
		}
	}
	for i, n := range leaves {
		if n.Positioned() {
			continue
		}
		angle := 2 * math.Pi * float64(i) / float64(len(leaves))
		p := e.probe(center, angle, e.cfg.PlacementRadius)
		n.Pos = &p
	}

	// Walk outward from every positioned node until the reachable part
	// of the graph is placed.
	for {
		progressed := false
		for _, n := range e.nodes {
			if !n.Positioned() {
				continue
			}
			for _, id := range n.Edges {
				t := e.byID[id]
				if t == nil || t.Positioned() {
					continue
				}
				base := math.Atan2(n.Pos.Y-center.Y, n.Pos.X-center.X)
				p := e.probe(*n.Pos, base, e.cfg.PlacementRadius)
				t.Pos = &p
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	// Nodes in components with no leaf (pure cycles) are still bare;
	// seed them around the center like leaves.
	for _, n := range e.nodes {
		if n.Positioned() {
			continue
		}
		p := e.probe(center, 0, e.cfg.PlacementRadius)
		n.Pos = &p
	}
}

// probe searches for a free slot around origin: every 10 degrees starting
// from base, growing the radius when a full ring has no position at least
// MinSeparation away from every placed node.
func (e *Engine) probe(origin r2.Vec, base, radius float64) r2.Vec {
	const step = 10 * math.Pi / 180
	var last r2.Vec
	for ring := 0; ring < 64; ring++ {
		r := radius + float64(ring)*e.cfg.RadiusStep
		for i := 0; i < 36; i++ {
			a := base + float64(i)*step
			last = r2.Vec{X: origin.X + r*math.Cos(a), Y: origin.Y + r*math.Sin(a)}
			if e.separated(last) {
				return last
			}
		}
	}
	return last
}

func (e *Engine) separated(p r2.Vec) bool {
	min2 := e.cfg.MinSeparation * e.cfg.MinSeparation
	for _, n := range e.nodes {
		if !n.Positioned() {
			continue
		}
		if r2.Norm2(r2.Sub(p, *n.Pos)) < min2 {
			return false
		}
	}
	return true
}

// repulse pushes every positioned pair within RepulsionRadius apart with
// an inverse-square force scaled by the animation speed. Both endpoints
// move by the same magnitude in opposite directions.
func (e *Engine) repulse() {
	max2 := e.cfg.RepulsionRadius * e.cfg.RepulsionRadius
	for i := 0; i < len(e.nodes); i++ {
		a := e.nodes[i]
		if !a.Positioned() {
			continue
		}
		for j := i + 1; j < len(e.nodes); j++ {
			b := e.nodes[j]
			if !b.Positioned() {
				continue
			}
			d := r2.Sub(*b.Pos, *a.Pos)
			dist2 := r2.Norm2(d)
			if dist2 == 0 || dist2 > max2 {
				continue
			}
			f := e.cfg.Repulsion / dist2 * e.speed
			shift := r2.Scale(f/math.Sqrt(dist2), d)
			*a.Pos = r2.Sub(*a.Pos, shift)
			*b.Pos = r2.Add(*b.Pos, shift)
		}
	}
}

// attract pulls both endpoints of every edge toward each other in
// proportion to the distance beyond MinAttractDistance. Edges at or under
// the minimum, dangling edges and unpositioned endpoints are skipped.
func (e *Engine) attract() {
	for _, a := range e.nodes {
		if !a.Positioned() {
			continue
		}
		for _, id := range a.Edges {
			b := e.byID[id]
			if b == nil || !b.Positioned() {
				continue
			}
			d := r2.Sub(*b.Pos, *a.Pos)
			dist := r2.Norm(d)
			if dist <= e.cfg.MinAttractDistance {
				continue
			}
			excess := dist - e.cfg.MinAttractDistance
			shift := r2.Scale(excess*e.cfg.Attraction/2/dist, d)
			*a.Pos = r2.Add(*a.Pos, shift)
			*b.Pos = r2.Sub(*b.Pos, shift)
		}
	}
}

// spring moves targeted nodes a fixed fraction of the remaining distance
// toward their target, an exponential approach that never overshoots.
func (e *Engine) spring() {
	for _, n := range e.nodes {
		if !n.Positioned() || n.Target == nil {
			continue
		}
		*n.Pos = r2.Add(*n.Pos, r2.Scale(e.cfg.SpringFactor, r2.Sub(*n.Target, *n.Pos)))
	}
}
