package vdom

// Kind discriminates the node variants of the virtual tree.
type Kind uint8

const (
	// KindElement is a regular DOM element node.
	KindElement Kind = iota
	// KindText is a text node.
	KindText
	// KindFragment groups children without a parent element.
	KindFragment
	// KindPortal renders its children under a different DOM target.
	KindPortal
)

// Flags carry optimization hints about a node.
type Flags uint8

const (
	// FlagStatic marks a subtree that never changes.
	FlagStatic Flags = 1 << iota
	// FlagHasKey marks a node that carries a reconciliation key.
	FlagHasKey
	// FlagHasRef marks a node with a ref callback.
	FlagHasRef
	// FlagHasEvents marks a node with event listeners.
	FlagHasEvents
)

// Props holds the attributes, event handlers, style and ref of a node.
type Props map[string]any

// VNode is a single node of the virtual tree. Once built it is never
// mutated; updates produce a new tree which is diffed against the old one.
type VNode struct {
	Kind  Kind
	Tag   string // element tag, KindElement only
	Props Props
	Kids  []VNode
	Key   string // reconciliation key, empty means none
	Flags Flags

	Text string // KindText only

	PortalTarget string // KindPortal only
}

// Element builds an element node and derives its flags from props.
func Element(tag string, props Props, children ...*VNode) *VNode {
	var flags Flags
	for k := range props {
		if len(k) > 2 && k[0] == 'o' && k[1] == 'n' {
			flags |= FlagHasEvents
			break
		}
	}
	if _, ok := props["key"]; ok {
		flags |= FlagHasKey
	}
	if _, ok := props["ref"]; ok {
		flags |= FlagHasRef
	}
	return &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: props,
		Kids:  collect(children),
		Flags: flags,
	}
}

// Text builds a text node.
func Text(text string) *VNode {
	return &VNode{Kind: KindText, Text: text}
}

// Fragment builds a parentless group of children.
func Fragment(children ...*VNode) *VNode {
	return &VNode{Kind: KindFragment, Kids: collect(children)}
}

// Portal builds a node whose children render under the given DOM target.
func Portal(target string, children ...*VNode) *VNode {
	return &VNode{Kind: KindPortal, PortalTarget: target, Kids: collect(children)}
}

func collect(children []*VNode) []VNode {
	if len(children) == 0 {
		return nil
	}
	kids := make([]VNode, 0, len(children))
	for _, c := range children {
		if c != nil {
			kids = append(kids, *c)
		}
	}
	return kids
}

// IsElement reports whether the node is an element.
func (v VNode) IsElement() bool { return v.Kind == KindElement }

// IsText reports whether the node is a text node.
func (v VNode) IsText() bool { return v.Kind == KindText }

// HasFlag reports whether the given flag is set.
func (v VNode) HasFlag(f Flags) bool { return v.Flags&f != 0 }

// GetKey returns the node's reconciliation key, preferring the props entry.
func (v VNode) GetKey() string {
	if v.Props != nil {
		if k, ok := v.Props["key"].(string); ok {
			return k
		}
	}
	return v.Key
}
