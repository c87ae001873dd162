package vdom

import (
	"testing"
)

func TestDiff_NilToNode(t *testing.T) {
	next := Element("div", nil)
	patches := Diff(nil, next)

	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != OpInsertNode {
		t.Errorf("expected InsertNode, got %v", patches[0])
	}
	if patches[0].Node != next {
		t.Error("insert patch should carry the new subtree")
	}
}

func TestDiff_NodeToNil(t *testing.T) {
	prev := Element("div", nil)
	patches := Diff(prev, nil)

	if len(patches) != 1 || patches[0].Op != OpRemoveNode {
		t.Fatalf("expected single RemoveNode, got %v", patches)
	}
}

func TestDiff_TextChange(t *testing.T) {
	patches := Diff(Text("old"), Text("new"))

	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != OpReplaceText || patches[0].Value != "new" {
		t.Errorf("expected ReplaceText(new), got %v", patches[0])
	}
}

func TestDiff_SameText(t *testing.T) {
	if patches := Diff(Text("same"), Text("same")); len(patches) != 0 {
		t.Errorf("expected no patches, got %v", patches)
	}
}

func TestDiff_TagChangeReplaces(t *testing.T) {
	patches := Diff(Element("div", nil), Element("span", nil))

	if len(patches) != 2 {
		t.Fatalf("expected remove+insert, got %v", patches)
	}
	if patches[0].Op != OpRemoveNode || patches[1].Op != OpInsertNode {
		t.Errorf("expected RemoveNode then InsertNode, got %v", patches)
	}
}

func TestDiff_AttributeSetAndRemove(t *testing.T) {
	prev := Element("div", Props{"class": "a", "id": "x"})
	next := Element("div", Props{"class": "b"})
	patches := Diff(prev, next)

	var set, removed int
	for _, p := range patches {
		switch p.Op {
		case OpSetAttribute:
			set++
			if p.Key != "class" || p.Value != "b" {
				t.Errorf("unexpected set patch %v", p)
			}
		case OpRemoveAttribute:
			removed++
			if p.Key != "id" {
				t.Errorf("unexpected remove patch %v", p)
			}
		}
	}
	if set != 1 || removed != 1 {
		t.Errorf("expected 1 set and 1 remove, got %v", patches)
	}
}

func TestDiff_UnchangedAttributeEmitsNothing(t *testing.T) {
	prev := Element("div", Props{"class": "a"})
	next := Element("div", Props{"class": "a"})

	if patches := Diff(prev, next); len(patches) != 0 {
		t.Errorf("expected no patches, got %v", patches)
	}
}

func TestDiff_EventHandlersUpdateEvents(t *testing.T) {
	prev := Element("button", Props{"onclick": func() {}})
	next := Element("button", Props{"onclick": func() {}})
	patches := Diff(prev, next)

	if len(patches) != 1 || patches[0].Op != OpUpdateEvents {
		t.Fatalf("expected single UpdateEvents, got %v", patches)
	}
}

func TestDiff_KeyChangeReplaces(t *testing.T) {
	prev := Element("li", Props{"key": "a"})
	next := Element("li", Props{"key": "b"})
	patches := Diff(prev, next)

	if len(patches) != 2 || patches[0].Op != OpRemoveNode || patches[1].Op != OpInsertNode {
		t.Fatalf("keyed mismatch should replace, got %v", patches)
	}
}

func TestDiff_ChildrenGrowAndShrink(t *testing.T) {
	prev := Element("ul", nil, Element("li", nil))
	next := Element("ul", nil, Element("li", nil), Element("li", nil))

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != OpInsertNode {
		t.Fatalf("expected child insert, got %v", patches)
	}

	patches = Diff(next, prev)
	if len(patches) != 1 || patches[0].Op != OpRemoveNode {
		t.Fatalf("expected child remove, got %v", patches)
	}
}

func TestDiff_NestedTextChange(t *testing.T) {
	prev := Element("div", nil, Element("p", nil, Text("hello")))
	next := Element("div", nil, Element("p", nil, Text("world")))

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != OpReplaceText || patches[0].Value != "world" {
		t.Fatalf("expected nested ReplaceText, got %v", patches)
	}
}

func TestElement_Flags(t *testing.T) {
	n := Element("div", Props{"onclick": func() {}, "key": "k", "ref": func() {}})
	for _, f := range []Flags{FlagHasEvents, FlagHasKey, FlagHasRef} {
		if !n.HasFlag(f) {
			t.Errorf("flag %b not set", f)
		}
	}
	if Element("div", nil).Flags != 0 {
		t.Error("plain element should carry no flags")
	}
}

func TestFragment_SkipsNilChildren(t *testing.T) {
	n := Fragment(Text("a"), nil, Text("b"))
	if len(n.Kids) != 2 {
		t.Errorf("expected 2 kids, got %d", len(n.Kids))
	}
}
