// Package layout implements relative layout descriptors: rectangles whose
// coordinates are stored not as fixed pixels but as a mix of absolute
// offsets, proportions of a reference area and anchor points, with a stable
// four-token text encoding ("x y w h").
//
// Rect resolves its symbolic coordinates against a reference rectangle in
// both directions. Relative layers element references on top, letting each
// axis borrow its reference frame from another element's bounds looked up
// through a Resolver.
package layout

import (
	"math"

	"oss.terrastruct.com/layout/geo"
)

// Rect describes a rectangle symbolically. The raw X, Y, W, H values are
// interpreted according to the per-axis anchor/basis and per-dimension size
// mode. The zero value is an absolute, top-left anchored, zero-sized
// rectangle.
//
// For example, with XBasis == ProportionOfParent, X == 0.2 places the
// rectangle 20% across the reference rectangle's width.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64

	XAnchor Anchor
	XBasis  Basis
	YAnchor Anchor
	YBasis  Basis
	WMode   SizeMode
	HMode   SizeMode
}

// Resolve computes the absolute rectangle described by r within ref,
// rounded to integer coordinates. ref must be non-empty; resolving against
// a degenerate reference is the caller's responsibility to guard (Relative
// does).
func (r Rect) Resolve(ref geo.Rect) geo.Rect {
	x, w := applyPosAndSize(r.X, r.W, r.XAnchor, r.XBasis, r.WMode, ref.X, ref.W)
	y, h := applyPosAndSize(r.Y, r.H, r.YAnchor, r.YBasis, r.HMode, ref.Y, ref.H)
	return geo.NewRect(x, y, w, h).Round()
}

// ResolveF is Resolve without the final rounding of the result to integer
// coordinates.
func (r Rect) ResolveF(ref geo.Rect) geo.Rect {
	x, w := applyPosAndSize(r.X, r.W, r.XAnchor, r.XBasis, r.WMode, ref.X, ref.W)
	y, h := applyPosAndSize(r.Y, r.H, r.YAnchor, r.YBasis, r.HMode, ref.Y, ref.H)
	return geo.NewRect(x, y, w, h)
}

// Reconcile recomputes the raw values so that resolving against an
// unchanged ref reproduces abs, keeping the current modes. Proportional
// values on an axis where ref has zero extent are left unchanged rather
// than producing Inf or NaN; stored layouts rely on this staying inert.
func (r *Rect) Reconcile(abs, ref geo.Rect) {
	r.X, r.W = updatePosAndSize(r.X, r.W, abs.X, abs.W, r.XAnchor, r.XBasis, r.WMode, ref.X, ref.W)
	r.Y, r.H = updatePosAndSize(r.Y, r.H, abs.Y, abs.H, r.YAnchor, r.YBasis, r.HMode, ref.Y, ref.H)
}

// SetModes re-expresses the stored coordinates under new modes, preserving
// the resolved position. ref is needed because switching between
// proportional and absolute interpretations requires the reference extents.
// An axis whose effective mode is unchanged is left untouched.
func (r *Rect) SetModes(xAnchor Anchor, xBasis Basis, yAnchor Anchor, yBasis Basis, wMode, hMode SizeMode, ref geo.Rect) {
	if xAnchor != r.XAnchor || xBasis != r.XBasis || wMode != r.WMode {
		tx, tw := applyPosAndSize(r.X, r.W, r.XAnchor, r.XBasis, r.WMode, ref.X, ref.W)

		r.XAnchor, r.XBasis, r.WMode = xAnchor, xBasis, wMode

		r.X, r.W = updatePosAndSize(r.X, r.W, tx, tw, xAnchor, xBasis, wMode, ref.X, ref.W)
	}

	if yAnchor != r.YAnchor || yBasis != r.YBasis || hMode != r.HMode {
		ty, th := applyPosAndSize(r.Y, r.H, r.YAnchor, r.YBasis, r.HMode, ref.Y, ref.H)

		r.YAnchor, r.YBasis, r.HMode = yAnchor, yBasis, hMode

		r.Y, r.H = updatePosAndSize(r.Y, r.H, ty, th, yAnchor, yBasis, hMode, ref.Y, ref.H)
	}
}

// IsAbsolute reports whether the rectangle is immune to changes in the
// reference rectangle, i.e. both positions are absolute from the top-left
// with left/top anchors and both sizes are absolute.
func (r Rect) IsAbsolute() bool {
	return r.XAnchor == LeftOrTop && r.XBasis == ParentTopLeft &&
		r.YAnchor == LeftOrTop && r.YBasis == ParentTopLeft &&
		r.WMode == AbsoluteSize && r.HMode == AbsoluteSize
}

// applyPosAndSize forward-evaluates one axis. Sizes resolve to whole pixels
// regardless of mode; the position stays fractional until the caller
// decides to round.
func applyPosAndSize(rawPos, rawSize float64, anchor Anchor, basis Basis, sizeMode SizeMode, refPos, refSize float64) (pos, size float64) {
	switch sizeMode {
	case ProportionalSize:
		size = float64(geo.RoundToInt(rawSize * refSize))
	case ParentMinusAbsolute:
		size = math.Max(0, refSize-float64(geo.RoundToInt(rawSize)))
	default:
		size = float64(geo.RoundToInt(rawSize))
	}

	switch basis {
	case ProportionOfParent:
		pos = refPos + rawPos*refSize
	case ParentBottomRight:
		pos = (refPos + refSize) - rawPos
	case ParentCentre:
		pos = rawPos + refPos + refSize/2
	default:
		pos = rawPos + refPos
	}

	switch anchor {
	case RightOrBottom:
		pos -= size
	case Centre:
		pos -= size / 2
	}
	return pos, size
}

// updatePosAndSize inverts applyPosAndSize: given the absolute position and
// size now observed, it recomputes the raw values under the given modes.
// Proportional values are only updated when refSize is positive; otherwise
// the current raw value is returned unchanged.
func updatePosAndSize(curPos, curSize, absPos, absSize float64, anchor Anchor, basis Basis, sizeMode SizeMode, refPos, refSize float64) (pos, size float64) {
	pos, size = curPos, curSize

	switch sizeMode {
	case ProportionalSize:
		if refSize > 0 {
			size = absSize / refSize
		}
	case ParentMinusAbsolute:
		size = refSize - absSize
	default:
		size = absSize
	}

	// Undo the anchor correction before inverting the basis transform.
	switch anchor {
	case RightOrBottom:
		absPos += absSize
	case Centre:
		absPos += absSize / 2
	}

	switch basis {
	case ProportionOfParent:
		if refSize > 0 {
			pos = (absPos - refPos) / refSize
		}
	case ParentBottomRight:
		pos = (refPos + refSize) - absPos
	case ParentCentre:
		pos = absPos - (refPos + refSize/2)
	default:
		pos = absPos - refPos
	}
	return pos, size
}
