package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRect parses the four-token "x y w h" form produced by Rect.String.
//
// Suffix letters are case-sensitive: uppercase selects the basis or size
// mode ("%", "R", "C", "M"), lowercase selects the anchor ("r", "c") and
// always comes last. A missing suffix means the default: top-left basis,
// left/top anchor, absolute size.
//
// Malformed input (wrong token count, non-numeric core after suffix
// stripping) fails fast; no partial rectangle is returned.
func ParseRect(s string) (Rect, error) {
	toks := strings.Fields(s)
	if len(toks) != 4 {
		return Rect{}, fmt.Errorf("malformed rectangle %q: expected 4 tokens, got %d", s, len(toks))
	}

	var r Rect
	var err error
	r.X, r.XAnchor, r.XBasis, err = parsePosToken(toks[0])
	if err != nil {
		return Rect{}, fmt.Errorf("malformed rectangle %q: x: %w", s, err)
	}
	r.Y, r.YAnchor, r.YBasis, err = parsePosToken(toks[1])
	if err != nil {
		return Rect{}, fmt.Errorf("malformed rectangle %q: y: %w", s, err)
	}
	r.W, r.WMode, err = parseSizeToken(toks[2])
	if err != nil {
		return Rect{}, fmt.Errorf("malformed rectangle %q: w: %w", s, err)
	}
	r.H, r.HMode, err = parseSizeToken(toks[3])
	if err != nil {
		return Rect{}, fmt.Errorf("malformed rectangle %q: h: %w", s, err)
	}
	return r, nil
}

// parsePosToken scans a position token back to front: the optional anchor
// letter is always last, then the optional basis letter, then the numeric
// core.
func parsePosToken(tok string) (v float64, anchor Anchor, basis Basis, err error) {
	rest := tok

	anchor = LeftOrTop
	if n := len(rest); n > 0 {
		switch rest[n-1] {
		case 'r':
			anchor = RightOrBottom
			rest = rest[:n-1]
		case 'c':
			anchor = Centre
			rest = rest[:n-1]
		}
	}

	basis = ParentTopLeft
	if n := len(rest); n > 0 {
		switch rest[n-1] {
		case '%':
			basis = ProportionOfParent
			rest = rest[:n-1]
		case 'R':
			basis = ParentBottomRight
			rest = rest[:n-1]
		case 'C':
			basis = ParentCentre
			rest = rest[:n-1]
		}
	}

	v, err = strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid position %q", tok)
	}
	if basis == ProportionOfParent {
		v /= 100
	}
	return v, anchor, basis, nil
}

func parseSizeToken(tok string) (v float64, mode SizeMode, err error) {
	rest := tok

	mode = AbsoluteSize
	if n := len(rest); n > 0 {
		switch rest[n-1] {
		case '%':
			mode = ProportionalSize
			rest = rest[:n-1]
		case 'M':
			mode = ParentMinusAbsolute
			rest = rest[:n-1]
		}
	}

	v, err = strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q", tok)
	}
	if mode == ProportionalSize {
		v /= 100
	}
	return v, mode, nil
}
