// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/optic"
)

type box struct {
	label string
	n     int
}

func labelLens() optic.Simple[box, string] {
	return optic.Lens(func(b box) string { return b.label },
		func(b box, l string) box { b.label = l; return b })
}

func countLens() optic.Simple[box, int] {
	return optic.Lens(func(b box) int { return b.n },
		func(b box, n int) box { b.n = n; return b })
}

func TestLensView(t *testing.T) {
	b := box{label: "crate", n: 3}
	if got := optic.View(labelLens(), b); got != "crate" {
		t.Fatalf("got %q, want %q", got, "crate")
	}
}

func TestLensSet(t *testing.T) {
	b := box{label: "crate", n: 3}
	got := optic.Set(labelLens(), "pallet", b)
	if got.label != "pallet" || got.n != 3 {
		t.Fatalf("got %+v, want label=pallet n=3", got)
	}
	if b.label != "crate" {
		t.Fatalf("source mutated: %+v", b)
	}
}

func TestLensModify(t *testing.T) {
	b := box{label: "crate", n: 3}
	got := optic.Modify(countLens(), func(n int) int { return n * 10 }, b)
	if got.n != 30 || got.label != "crate" {
		t.Fatalf("got %+v, want n=30 label=crate", got)
	}
}

func TestIsoViewSet(t *testing.T) {
	bytesOf := optic.Iso(
		func(s string) []byte { return []byte(s) },
		func(b []byte) string { return string(b) },
	)
	if got := optic.View(bytesOf, "hi"); string(got) != "hi" {
		t.Fatalf("got %q, want %q", got, "hi")
	}
	if got := optic.Set(bytesOf, []byte("yo"), "hi"); got != "yo" {
		t.Fatalf("got %q, want %q", got, "yo")
	}
}

func TestGetterView(t *testing.T) {
	length := optic.Getter(func(s string) int { return len(s) })
	if got := optic.View(length, "four"); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}

func TestGetterUpdatePanics(t *testing.T) {
	length := optic.Getter(func(s string) int { return len(s) })

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on Set through a Getter")
		}
		if s, ok := r.(string); !ok || s != "optic: update through read-only Getter" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	_ = optic.Set(length, 9, "four")
}

func TestIdentity(t *testing.T) {
	id := optic.Identity[int]()
	if got := optic.View(id, 7); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if got := optic.Set(id, 9, 7); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	if got := optic.Modify(id, func(x int) int { return x + 1 }, 7); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestCompose(t *testing.T) {
	first := optic.Compose(optic.Head[box](), countLens())
	vs := optic.NewVector(box{label: "a", n: 1}, box{label: "b", n: 2})

	if got := optic.View(first, vs); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	got := optic.Set(first, 10, vs)
	if got.At(0).n != 10 || got.At(1).n != 2 {
		t.Fatalf("got %v, want n=10 at 0 and n=2 at 1", got)
	}
	if vs.At(0).n != 1 {
		t.Fatalf("source mutated: %v", vs)
	}
}

// TestComposeAssociativity: Compose(Compose(a, b), c) ≡ Compose(a, Compose(b, c))
// under View, Set and Modify.
func TestComposeAssociativity(t *testing.T) {
	a := optic.Head[box]()
	b := labelLens()
	c := optic.Iso(
		func(s string) []byte { return []byte(s) },
		func(bs []byte) string { return string(bs) },
	)
	left := optic.Compose(optic.Compose(a, b), c)
	right := optic.Compose(a, optic.Compose(b, c))
	vs := optic.NewVector(box{label: "crate", n: 1}, box{label: "drum", n: 2})

	if lv, rv := optic.View(left, vs), optic.View(right, vs); string(lv) != string(rv) {
		t.Fatalf("view: %q != %q", lv, rv)
	}
	ls := optic.Set(left, []byte("tub"), vs)
	rs := optic.Set(right, []byte("tub"), vs)
	if ls.At(0).label != "tub" || rs.At(0).label != "tub" || ls.At(1).label != rs.At(1).label {
		t.Fatalf("set: %v != %v", ls, rs)
	}
	up := func(bs []byte) []byte { return append(bs, '!') }
	lm := optic.Modify(left, up, vs)
	rm := optic.Modify(right, up, vs)
	if lm.At(0).label != "crate!" || lm.At(0).label != rm.At(0).label {
		t.Fatalf("modify: %v != %v", lm, rm)
	}
}

// TestComposeIdentityUnit: Identity is a two-sided unit of Compose.
func TestComposeIdentityUnit(t *testing.T) {
	l := labelLens()
	leftUnit := optic.Compose(optic.Identity[box](), l)
	rightUnit := optic.Compose(l, optic.Identity[string]())
	b := box{label: "crate", n: 3}

	if got := optic.View(leftUnit, b); got != "crate" {
		t.Fatalf("left unit view: got %q", got)
	}
	if got := optic.View(rightUnit, b); got != "crate" {
		t.Fatalf("right unit view: got %q", got)
	}
	if got := optic.Set(leftUnit, "tub", b); got.label != "tub" {
		t.Fatalf("left unit set: got %+v", got)
	}
	if got := optic.Set(rightUnit, "tub", b); got.label != "tub" {
		t.Fatalf("right unit set: got %+v", got)
	}
}

func TestViewFirstTargetOfTraversal(t *testing.T) {
	v := optic.NewVector(10, 20, 30, 40)
	if got := optic.View(optic.NoKey(optic.Ordinals[int](2, 0)), v); got != 30 {
		t.Fatalf("got %d, want 30", got)
	}
}

func TestViewEmptyTargetPanics(t *testing.T) {
	v := optic.NewVector(10, 20)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on View with no targets")
		}
		if s, ok := r.(string); !ok || s != "optic: View on reference with no targets" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	_ = optic.View(optic.NoKey(optic.Ordinals[int]()), v)
}

func TestPreview(t *testing.T) {
	v := optic.NewVector(10, 20, 30)
	if got, ok := optic.Preview(optic.NoKey(optic.Ordinals[int](1)), v); !ok || got != 20 {
		t.Fatalf("got (%d, %v), want (20, true)", got, ok)
	}
	if got, ok := optic.Preview(optic.NoKey(optic.Ordinals[int]()), v); ok || got != 0 {
		t.Fatalf("got (%d, %v), want (0, false)", got, ok)
	}
}

func TestSetEveryTarget(t *testing.T) {
	v := optic.NewVector(1, 2, 3, 4)
	got := optic.Set(optic.NoKey(optic.Ordinals[int](0, 2)), 9, v)
	want := []int{9, 2, 9, 4}
	for i, w := range want {
		if got.At(i) != w {
			t.Fatalf("at %d: got %d, want %d", i, got.At(i), w)
		}
	}
}

func TestModifyLeavesUnvisited(t *testing.T) {
	v := optic.NewVector(1, 2, 3)
	got := optic.Modify(optic.NoKey(optic.Ordinals[int](1)), func(x int) int { return -x }, v)
	if got.At(0) != 1 || got.At(1) != -2 || got.At(2) != 3 {
		t.Fatalf("got %v, want [1 -2 3]", got)
	}
}

func TestModifyNoTargetsReturnsSource(t *testing.T) {
	v := optic.NewVector(1, 2, 3)
	got := optic.Modify(optic.NoKey(optic.Ordinals[int]()), func(x int) int { return -x }, v)
	for i := range 3 {
		if got.At(i) != v.At(i) {
			t.Fatalf("at %d: got %d, want %d", i, got.At(i), v.At(i))
		}
	}
}

func TestFoldMapVisitationOrder(t *testing.T) {
	v := optic.NewVector("a", "b", "c", "d")
	got := optic.FoldMap(optic.NoKey(optic.Ordinals[string](3, 1, 0)), "",
		func(x, y string) string { return x + y },
		func(s string) string { return strings.ToUpper(s) }, v)
	if got != "DBA" {
		t.Fatalf("got %q, want %q", got, "DBA")
	}
}

func TestCollect(t *testing.T) {
	v := optic.NewVector(5, 6, 7, 8)
	got := optic.Collect(optic.NoKey(optic.Ordinals[int](1, 3)), v)
	if len(got) != 2 || got[0] != 6 || got[1] != 8 {
		t.Fatalf("got %v, want [6 8]", got)
	}
	if empty := optic.Collect(optic.NoKey(optic.Ordinals[int]()), v); empty != nil {
		t.Fatalf("got %v, want nil", empty)
	}
}

// pureMapping implements Mapping but not Sequencing, so applying it to a
// multi-target reference must fail with the shape-mismatch condition.
type pureMapping struct{}

func (pureMapping) Pure(v optic.Effect) optic.Effect { return v }

func (pureMapping) Map(e optic.Effect, f func(optic.Effect) optic.Effect) optic.Effect {
	return f(e)
}

func TestSequencingRequired(t *testing.T) {
	v := optic.NewVector(1, 2, 3)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on multi-target reference without Sequencing")
		}
		if s, ok := r.(string); !ok || s != "optic: Ordinals requires a Sequencing capability" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	_ = optic.Ordinals[int](0, 1)(pureMapping{}, func(_, x int) optic.Effect { return x })(v)
}

func TestSequencingNotRequiredForLens(t *testing.T) {
	b := box{label: "crate", n: 3}
	e := labelLens()(pureMapping{}, func(l string) optic.Effect { return l + "!" })(b)
	got, ok := e.(box)
	if !ok || got.label != "crate!" {
		t.Fatalf("got %v, want box with label crate!", e)
	}
}
