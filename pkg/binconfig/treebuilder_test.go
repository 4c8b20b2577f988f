package binconfig

import "testing"

func TestTreeBuilderNestedClasses(t *testing.T) {
	tb := NewTreeBuilder()
	tb.EnterClass([]byte("Outer"), nil)
	tb.Scalar([]byte("x"), ScalarValue{Kind: ScalarInt32, I32: 1})
	tb.EnterClass([]byte("Inner"), []byte("Base"))
	tb.Scalar([]byte("y"), ScalarValue{Kind: ScalarInt32, I32: 2})
	tb.LeaveClass()
	tb.LeaveClass()

	entries := tb.Entries()
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	outer := entries[0]
	if len(outer.Children) != 2 {
		t.Fatalf("len(outer.Children) = %d, want 2", len(outer.Children))
	}
	if outer.Children[0].Kind != EntryScalar {
		t.Errorf("Children[0].Kind = %v, want EntryScalar", outer.Children[0].Kind)
	}
	inner := outer.Children[1]
	if inner.Kind != EntryClass || string(inner.Name) != "Inner" || string(inner.Parent) != "Base" {
		t.Fatalf("inner = %+v", inner)
	}
	if len(inner.Children) != 1 || string(inner.Children[0].Name) != "y" {
		t.Fatalf("inner.Children = %+v", inner.Children)
	}
}

func TestTreeBuilderArrayAssembly(t *testing.T) {
	tb := NewTreeBuilder()
	tb.EnterClass([]byte("A"), nil)
	tb.ArrayBegin([]byte("a"))
	tb.ArrayElement(ArrayElement{Kind: ElementInt32, I32: 1})
	tb.ArrayElement(ArrayElement{Kind: ElementInt32, I32: 2})
	tb.ArrayEnd()
	tb.LeaveClass()

	arr := tb.Entries()[0].Children[0]
	if arr.Kind != EntryArray || len(arr.Elements) != 2 {
		t.Fatalf("arr = %+v", arr)
	}
	if arr.Elements[0].I32 != 1 || arr.Elements[1].I32 != 2 {
		t.Errorf("Elements = %+v", arr.Elements)
	}
}

func TestTreeBuilderDefinesNestedInsideClass(t *testing.T) {
	tb := NewTreeBuilder()
	tb.EnterClass([]byte("A"), nil)
	tb.Scalar([]byte("x"), ScalarValue{Kind: ScalarInt32, I32: 1})
	tb.Define([]byte("FOO"), 7)
	tb.Define([]byte("BAR"), 9)
	tb.LeaveClass()

	children := tb.Entries()[0].Children
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2 (scalar + one merged Defines block)", len(children))
	}
	defines := children[1]
	if defines.Kind != EntryDefines {
		t.Fatalf("children[1].Kind = %v, want EntryDefines", defines.Kind)
	}
	if len(defines.Defines) != 2 {
		t.Fatalf("len(Defines) = %d, want 2", len(defines.Defines))
	}
	if string(defines.Defines[0].Name) != "FOO" || defines.Defines[0].Value != 7 {
		t.Errorf("Defines[0] = %+v", defines.Defines[0])
	}
	if string(defines.Defines[1].Name) != "BAR" || defines.Defines[1].Value != 9 {
		t.Errorf("Defines[1] = %+v", defines.Defines[1])
	}
}

func TestTreeBuilderDefinesAtRootThenClassDoNotMerge(t *testing.T) {
	tb := NewTreeBuilder()
	tb.Define([]byte("ROOT_DEFINE"), 1)
	tb.EnterClass([]byte("A"), nil)
	tb.Define([]byte("INNER_DEFINE"), 2)
	tb.LeaveClass()

	entries := tb.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2 (root Defines + class A)", len(entries))
	}
	if entries[0].Kind != EntryDefines || len(entries[0].Defines) != 1 {
		t.Fatalf("entries[0] = %+v", entries[0])
	}
	classA := entries[1]
	if classA.Kind != EntryClass || len(classA.Children) != 1 {
		t.Fatalf("entries[1] = %+v", classA)
	}
	if classA.Children[0].Kind != EntryDefines || len(classA.Children[0].Defines) != 1 {
		t.Fatalf("classA.Children[0] = %+v", classA.Children[0])
	}
}
