package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/layout/geo"
)

func TestResolveGrammarCombinations(t *testing.T) {
	ref := geo.NewRect(0, 0, 200, 100)

	r, err := ParseRect("20% 30 150 50%")
	assert.NoError(t, err)
	assert.Equal(t, geo.NewRect(40, 30, 150, 50), r.Resolve(ref))

	// 10px inset on every edge
	r, err = ParseRect("10 10 20M 20M")
	assert.NoError(t, err)
	assert.Equal(t, geo.NewRect(10, 10, 180, 80), r.Resolve(ref))
}

func TestResolveBottomRightAnchored(t *testing.T) {
	// "-50Rr": measured from the reference's right edge, anchored at this
	// rectangle's right edge. x = 300 - (-50) - w.
	r, err := ParseRect("-50Rr 0 60 40")
	assert.NoError(t, err)

	got := r.Resolve(geo.NewRect(0, 0, 300, 200))
	assert.Equal(t, float64(350-60), got.X)
	assert.Equal(t, float64(60), got.W)
}

func TestResolveAnchorSymmetry(t *testing.T) {
	ref := geo.NewRect(7, 0, 300, 200)
	base := Rect{X: 100, W: 60, H: 40}

	left := base
	left.XAnchor = LeftOrTop
	assert.Equal(t, float64(100+7), left.Resolve(ref).X)

	right := base
	right.XAnchor = RightOrBottom
	assert.Equal(t, float64(100+7-60), right.Resolve(ref).X)

	centre := base
	centre.XAnchor = Centre
	assert.Equal(t, float64(100+7-30), centre.Resolve(ref).X)
}

func TestResolveBases(t *testing.T) {
	ref := geo.NewRect(10, 20, 200, 100)

	for _, tc := range []struct {
		name  string
		basis Basis
		raw   float64
		wantX float64
	}{
		{"top left", ParentTopLeft, 30, 40},
		{"bottom right", ParentBottomRight, 30, 180},
		{"centre", ParentCentre, -10, 100},
		{"proportion", ProportionOfParent, 0.25, 60},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := Rect{X: tc.raw, XBasis: tc.basis, W: 8, H: 8}
			assert.Equal(t, tc.wantX, r.Resolve(ref).X)
		})
	}
}

func TestReconcileInvertsResolve(t *testing.T) {
	ref := geo.NewRect(10, 20, 200, 100)

	rects := []Rect{
		{X: 30, Y: 40, W: 60, H: 20},
		{X: 0.25, XBasis: ProportionOfParent, Y: 40, W: 0.5, WMode: ProportionalSize, H: 20},
		{X: 30, XBasis: ParentBottomRight, XAnchor: RightOrBottom, Y: -10, YBasis: ParentCentre, W: 20, WMode: ParentMinusAbsolute, H: 0.2, HMode: ProportionalSize},
		{X: 0.4, XBasis: ProportionOfParent, XAnchor: Centre, Y: 40, YAnchor: RightOrBottom, W: 50, H: 30},
	}

	for _, want := range rects {
		abs := want.Resolve(ref)

		got := want
		got.X, got.Y, got.W, got.H = 0, 0, 0, 0
		got.Reconcile(abs, ref)

		assert.InDelta(t, want.X, got.X, 1e-9)
		assert.InDelta(t, want.Y, got.Y, 1e-9)
		assert.InDelta(t, want.W, got.W, 1e-9)
		assert.InDelta(t, want.H, got.H, 1e-9)
		assert.Equal(t, abs, got.Resolve(ref))
	}
}

func TestReconcileZeroExtentLeavesProportionsUntouched(t *testing.T) {
	r := Rect{
		X: 0.25, XBasis: ProportionOfParent,
		Y: 40,
		W: 0.5, WMode: ProportionalSize,
		H: 20,
	}
	// Zero width: proportional x and w must stay inert, the rest updates.
	r.Reconcile(geo.NewRect(80, 60, 90, 30), geo.NewRect(0, 0, 0, 100))

	assert.Equal(t, 0.25, r.X)
	assert.Equal(t, 0.5, r.W)
	assert.Equal(t, float64(60), r.Y)
	assert.Equal(t, float64(30), r.H)
}

func TestSetModesPreservesResolvedRectangle(t *testing.T) {
	ref := geo.NewRect(0, 0, 200, 100)

	r, err := ParseRect("20% 30 150 50%")
	assert.NoError(t, err)
	before := r.Resolve(ref)

	r.SetModes(LeftOrTop, ParentTopLeft, LeftOrTop, ParentTopLeft, AbsoluteSize, AbsoluteSize, ref)
	assert.Equal(t, before, r.Resolve(ref))
	assert.True(t, r.IsAbsolute())

	r.SetModes(RightOrBottom, ParentBottomRight, Centre, ProportionOfParent, ParentMinusAbsolute, ProportionalSize, ref)
	assert.Equal(t, before, r.Resolve(ref))
	assert.False(t, r.IsAbsolute())
}

func TestSetModesSkipsUnchangedAxes(t *testing.T) {
	r := Rect{X: 0.3, XBasis: ProportionOfParent, Y: 10, W: 50, H: 60}

	// Same modes against a garbage reference: nothing may move.
	r.SetModes(LeftOrTop, ProportionOfParent, LeftOrTop, ParentTopLeft, AbsoluteSize, AbsoluteSize, geo.Rect{})

	assert.Equal(t, 0.3, r.X)
	assert.Equal(t, float64(10), r.Y)
	assert.Equal(t, float64(50), r.W)
	assert.Equal(t, float64(60), r.H)
}

func TestIsAbsolute(t *testing.T) {
	assert.True(t, Rect{X: 5, Y: 5, W: 10, H: 10}.IsAbsolute())
	assert.False(t, Rect{XBasis: ParentCentre}.IsAbsolute())
	assert.False(t, Rect{YAnchor: Centre}.IsAbsolute())
	assert.False(t, Rect{HMode: ParentMinusAbsolute}.IsAbsolute())
}
