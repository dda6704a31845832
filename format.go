package layout

import (
	"strconv"
	"strings"

	"oss.terrastruct.com/layout/geo"
)

// String returns the four-token text form of the rectangle, "x y w h".
//
//   - An absolute coordinate is written as a plain number, e.g. "100".
//   - A proportional coordinate is written as a percentage, e.g. "80%".
//   - A position measured from the reference's right/bottom edge gets "R"
//     appended; from the reference's centre, "C".
//   - A position anchored at the rectangle's right/bottom edge gets "r"
//     appended last; anchored at its centre, "c". So "-50Rr" places this
//     rectangle's right edge 50 units left of the reference's right edge,
//     and "40%c" centres it 40% across the reference's width.
//   - A size in ParentMinusAbsolute mode gets "M" appended, e.g. "20M".
//
// Percentages are quantized to 3 decimals and plain values to 2, so stored
// layouts round-trip through ParseRect byte for byte.
func (r Rect) String() string {
	var sb strings.Builder
	writePos(&sb, r.X, r.XAnchor, r.XBasis)
	sb.WriteByte(' ')
	writePos(&sb, r.Y, r.YAnchor, r.YBasis)
	sb.WriteByte(' ')
	writeSize(&sb, r.W, r.WMode)
	sb.WriteByte(' ')
	writeSize(&sb, r.H, r.HMode)
	return sb.String()
}

func writeNum(sb *strings.Builder, v float64) {
	sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}

func writePos(sb *strings.Builder, v float64, anchor Anchor, basis Basis) {
	if basis == ProportionOfParent {
		writeNum(sb, geo.Quantize(v*100, 1000))
		sb.WriteByte('%')
	} else {
		writeNum(sb, geo.Quantize(v, 100))
		switch basis {
		case ParentBottomRight:
			sb.WriteByte('R')
		case ParentCentre:
			sb.WriteByte('C')
		}
	}

	switch anchor {
	case RightOrBottom:
		sb.WriteByte('r')
	case Centre:
		sb.WriteByte('c')
	}
}

func writeSize(sb *strings.Builder, v float64, mode SizeMode) {
	switch mode {
	case ProportionalSize:
		writeNum(sb, geo.Quantize(v*100, 1000))
		sb.WriteByte('%')
	case ParentMinusAbsolute:
		writeNum(sb, geo.Quantize(v, 100))
		sb.WriteByte('M')
	default:
		writeNum(sb, geo.Quantize(v, 100))
	}
}
