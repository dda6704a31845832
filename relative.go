package layout

import (
	"strings"

	"oss.terrastruct.com/layout/geo"
)

// ElementID identifies an element in an externally owned layout. Zero is
// reserved for "no reference".
type ElementID uint64

// Resolver maps an element ID to that element's current bounds.
// Implementations report false for unknown IDs; that is never an error
// here, the descriptor falls back to the ambient parent area.
//
// A Resolver is only consulted for the duration of a call and never
// retained.
type Resolver interface {
	BoundsByID(id ElementID) (geo.Rect, bool)
}

// Relative is a Rect whose reference frame can be another element's bounds
// instead of the ambient parent area. The four references are independent:
// each axis and dimension may reference a different element, or none.
type Relative struct {
	Rect Rect

	RelativeToX ElementID
	RelativeToY ElementID
	RelativeToW ElementID
	RelativeToH ElementID
}

func lookup(res Resolver, id ElementID) (geo.Rect, bool) {
	if id == 0 || res == nil {
		return geo.Rect{}, false
	}
	return res.BoundsByID(id)
}

// referenceFrames builds the two synthetic reference rectangles the
// descriptor evaluates against: posRef for x/y and sizeRef for w/h. The two
// share an origin but may differ in extent, since the x/y references and
// the w/h references can be different elements.
func (rr Relative) referenceFrames(parent geo.Rect, res Resolver) (posRef, sizeRef geo.Rect) {
	x := parent.X
	y := parent.Y
	xw, yh := parent.W, parent.H
	w, h := parent.W, parent.H

	if b, ok := lookup(res, rr.RelativeToX); ok {
		x += b.X
		xw = b.W
	}
	if b, ok := lookup(res, rr.RelativeToY); ok {
		y += b.Y
		yh = b.H
	}
	if b, ok := lookup(res, rr.RelativeToW); ok {
		w = b.W
	}
	if b, ok := lookup(res, rr.RelativeToH); ok {
		h = b.H
	}

	return geo.NewRect(x, y, xw, yh), geo.NewRect(x, y, w, h)
}

// Resolve computes the absolute rectangle within parent, resolving element
// references through res. X and Y come from evaluating against the position
// reference frame, W and H from the size reference frame. A degenerate
// reference frame yields zeros for the affected pair.
//
// res may be nil, in which case every reference falls back to parent.
func (rr Relative) Resolve(parent geo.Rect, res Resolver) geo.Rect {
	posRef, sizeRef := rr.referenceFrames(parent, res)

	var xy, wh geo.Rect
	if !posRef.IsEmpty() {
		xy = rr.Rect.Resolve(posRef)
	}
	if !sizeRef.IsEmpty() {
		wh = rr.Rect.Resolve(sizeRef)
	}

	return geo.NewRect(xy.X, xy.Y, wh.W, wh.H)
}

// ResolveF is Resolve without the final rounding to integer coordinates.
func (rr Relative) ResolveF(parent geo.Rect, res Resolver) geo.Rect {
	posRef, sizeRef := rr.referenceFrames(parent, res)

	xy := rr.Rect.ResolveF(posRef)
	wh := rr.Rect.ResolveF(sizeRef)

	return geo.NewRect(xy.X, xy.Y, wh.W, wh.H)
}

// XY resolves only the position, unrounded.
func (rr Relative) XY(parent geo.Rect, res Resolver) (x, y float64) {
	r := rr.ResolveF(parent, res)
	return r.X, r.Y
}

// Reconcile updates the stored raw values so that resolving against the
// same parent and resolver reproduces abs. It runs the inverse evaluation
// once per reference frame and merges: x/y from the position pass, w/h from
// the size pass.
func (rr *Relative) Reconcile(abs, parent geo.Rect, res Resolver) {
	posRef, sizeRef := rr.referenceFrames(parent, res)

	xy, wh := rr.Rect, rr.Rect
	xy.Reconcile(abs, posRef)
	wh.Reconcile(abs, sizeRef)

	rr.Rect.X = xy.X
	rr.Rect.Y = xy.Y
	rr.Rect.W = wh.W
	rr.Rect.H = wh.H
}

// PosString returns only the x and y tokens of the text form, the way the
// position is displayed on its own.
func (rr Relative) PosString() string {
	toks := strings.Fields(rr.Rect.String())
	return toks[0] + " " + toks[1]
}
