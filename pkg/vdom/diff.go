package vdom

import (
	"fmt"
	"sort"
)

// Op identifies a patch operation.
type Op uint8

const (
	// OpReplaceText replaces a text node's content.
	OpReplaceText Op = 0x01
	// OpSetAttribute sets or replaces an attribute.
	OpSetAttribute Op = 0x02
	// OpRemoveNode removes a node.
	OpRemoveNode Op = 0x03
	// OpInsertNode inserts a new subtree.
	OpInsertNode Op = 0x04
	// OpUpdateEvents updates event listener subscriptions.
	OpUpdateEvents Op = 0x05
	// OpRemoveAttribute removes an attribute.
	OpRemoveAttribute Op = 0x06
)

// Patch is a single mutation an applier performs against the real tree.
type Patch struct {
	Op       Op
	NodeID   uint32
	ParentID uint32 // insert only
	Key      string // attribute key
	Value    string // text content or attribute value
	Node     *VNode // insert only
}

func (p Patch) String() string {
	switch p.Op {
	case OpReplaceText:
		return fmt.Sprintf("ReplaceText(node=%d, text=%q)", p.NodeID, p.Value)
	case OpSetAttribute:
		return fmt.Sprintf("SetAttribute(node=%d, %s=%q)", p.NodeID, p.Key, p.Value)
	case OpRemoveAttribute:
		return fmt.Sprintf("RemoveAttribute(node=%d, key=%q)", p.NodeID, p.Key)
	case OpRemoveNode:
		return fmt.Sprintf("RemoveNode(node=%d)", p.NodeID)
	case OpInsertNode:
		return fmt.Sprintf("InsertNode(node=%d, parent=%d)", p.NodeID, p.ParentID)
	case OpUpdateEvents:
		return fmt.Sprintf("UpdateEvents(node=%d)", p.NodeID)
	default:
		return fmt.Sprintf("Unknown(op=%d)", p.Op)
	}
}

type differ struct {
	patches []Patch
	nextID  uint32
	ids     map[*VNode]uint32
}

func (d *differ) id(n *VNode) uint32 {
	if n == nil {
		return 0
	}
	if id, ok := d.ids[n]; ok {
		return id
	}
	id := d.nextID
	d.nextID++
	d.ids[n] = id
	return id
}

func (d *differ) emit(p Patch) {
	d.patches = append(d.patches, p)
}

// Diff computes the patches that transform prev into next.
func Diff(prev, next *VNode) []Patch {
	d := &differ{nextID: 1, ids: make(map[*VNode]uint32)}
	d.node(prev, next, 0)
	return d.patches
}

func (d *differ) node(prev, next *VNode, parentID uint32) {
	switch {
	case prev == nil && next == nil:
		return
	case next == nil:
		d.emit(Patch{Op: OpRemoveNode, NodeID: d.id(prev)})
		return
	case prev == nil:
		d.emit(Patch{Op: OpInsertNode, NodeID: d.id(next), ParentID: parentID, Node: next})
		return
	}

	// Incompatible nodes are replaced wholesale. A key change forces the
	// same path so stateful subtrees are never silently reused.
	if prev.Kind != next.Kind ||
		(prev.Kind == KindElement && prev.Tag != next.Tag) ||
		prev.GetKey() != next.GetKey() {
		d.emit(Patch{Op: OpRemoveNode, NodeID: d.id(prev)})
		d.emit(Patch{Op: OpInsertNode, NodeID: d.id(next), ParentID: parentID, Node: next})
		return
	}

	nodeID := d.id(prev)
	d.ids[next] = nodeID

	switch prev.Kind {
	case KindText:
		if prev.Text != next.Text {
			d.emit(Patch{Op: OpReplaceText, NodeID: nodeID, Value: next.Text})
		}
		return
	case KindElement:
		d.props(prev, next, nodeID)
	}

	d.children(prev.Kids, next.Kids, nodeID)
}

func (d *differ) props(prev, next *VNode, nodeID uint32) {
	eventsChanged := false

	// Deterministic ordering keeps patch streams stable for tests.
	keys := make([]string, 0, len(next.Props))
	for k := range next.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		nv := next.Props[k]
		if isEventProp(k) || k == "ref" || k == "key" {
			if isEventProp(k) {
				eventsChanged = true
			}
			continue
		}
		pv, had := lookup(prev.Props, k)
		ns := attrString(nv)
		if !had || attrString(pv) != ns {
			d.emit(Patch{Op: OpSetAttribute, NodeID: nodeID, Key: k, Value: ns})
		}
	}

	removed := make([]string, 0)
	for k := range prev.Props {
		if isEventProp(k) || k == "ref" || k == "key" {
			continue
		}
		if _, ok := lookup(next.Props, k); !ok {
			removed = append(removed, k)
		}
	}
	sort.Strings(removed)
	for _, k := range removed {
		d.emit(Patch{Op: OpRemoveAttribute, NodeID: nodeID, Key: k})
	}

	if !eventsChanged {
		for k := range prev.Props {
			if isEventProp(k) {
				eventsChanged = true
				break
			}
		}
	}
	if eventsChanged {
		d.emit(Patch{Op: OpUpdateEvents, NodeID: nodeID})
	}
}

func (d *differ) children(prev, next []VNode, parentID uint32) {
	n := len(prev)
	if len(next) > n {
		n = len(next)
	}
	for i := 0; i < n; i++ {
		var p, q *VNode
		if i < len(prev) {
			p = &prev[i]
		}
		if i < len(next) {
			q = &next[i]
		}
		d.node(p, q, parentID)
	}
}

func lookup(props Props, key string) (any, bool) {
	if props == nil {
		return nil, false
	}
	v, ok := props[key]
	return v, ok
}

func isEventProp(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

func attrString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}
