package ir

import (
	"testing"
)

func TestSetReplaces(t *testing.T) {
	obj := NewObject().
		Set("a", FromInt(1)).
		Set("b", FromInt(2)).
		Set("a", FromInt(3))
	if obj.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", obj.Len())
	}
	v, ok := obj.Lookup("a")
	if !ok {
		t.Fatal("expected a to be present")
	}
	if *v.Int64 != 3 {
		t.Errorf("expected a=3, got %d", *v.Int64)
	}
	if v.ParentIndex != 0 || v.Parent != obj || v.ParentField != "a" {
		t.Errorf("bad parent links: %d %v %q", v.ParentIndex, v.Parent == obj, v.ParentField)
	}
	if obj.Fields[0].String != "a" || obj.Fields[1].String != "b" {
		t.Errorf("insertion order not kept: %q %q", obj.Fields[0].String, obj.Fields[1].String)
	}
}

func TestLookupAbsent(t *testing.T) {
	obj := NewObject().Set("a", Null())
	if _, ok := obj.Lookup("b"); ok {
		t.Error("expected b to be absent")
	}
	v, ok := obj.Lookup("a")
	if !ok || v.Type != NullType {
		t.Error("expected a present null value")
	}
	if Get(obj, "b") != nil {
		t.Error("Get of absent key should be nil")
	}
}

func TestAppend(t *testing.T) {
	arr := NewArray().Append(FromString("x")).Append(FromString("y"))
	if arr.Len() != 2 {
		t.Fatalf("expected 2 values, got %d", arr.Len())
	}
	for i, v := range arr.Values {
		if v.Parent != arr || v.ParentIndex != i {
			t.Errorf("value %d has bad parent links", i)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "n", Val: FromInt(1)},
		{Key: "xs", Val: FromSlice([]*Node{FromString("a")})},
	})
	c := orig.Clone()
	if Compare(orig, c) != 0 {
		t.Fatal("clone differs from original")
	}
	*Get(c, "n").Int64 = 2
	Get(c, "xs").Values[0].String = "b"
	if *Get(orig, "n").Int64 != 1 {
		t.Error("clone shares Int64 storage")
	}
	if Get(orig, "xs").Values[0].String != "a" {
		t.Error("clone shares children")
	}
	if Get(c, "xs").Parent != c {
		t.Error("cloned child not re-parented")
	}
}

func TestReset(t *testing.T) {
	obj := NewObject().Set("s", FromString("v"))
	s := Get(obj, "s")
	s.Reset()
	if s.Type != NullType || s.String != "" {
		t.Errorf("expected null, got %s %q", s.Type, s.String)
	}
	if s.Parent != obj || s.ParentField != "s" {
		t.Error("reset lost position")
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{"b": Null(), "a": Null(), "c": Null()})
	got := ""
	for _, f := range obj.Fields {
		got += f.String
	}
	if got != "abc" {
		t.Errorf("expected sorted keys abc, got %q", got)
	}
}

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		d, err := ty.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != ty {
			t.Errorf("%s came back as %s", ty, back)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Comment")); err == nil {
		t.Error("expected error for unknown type")
	}
}
