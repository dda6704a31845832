package layout

// Anchor selects which point of the rectangle itself an x or y coordinate
// pins: its left/top edge, its right/bottom edge, or its centre.
type Anchor int

const (
	LeftOrTop Anchor = iota
	RightOrBottom
	Centre
)

func (a Anchor) String() string {
	switch a {
	case LeftOrTop:
		return "LeftOrTop"
	case RightOrBottom:
		return "RightOrBottom"
	case Centre:
		return "Centre"
	default:
		return ""
	}
}

// Basis selects what an x or y coordinate's raw value is measured against.
type Basis int

const (
	// ParentTopLeft means an absolute distance from the reference
	// rectangle's left or top edge.
	ParentTopLeft Basis = iota
	// ParentBottomRight means an absolute distance from the reference
	// rectangle's right or bottom edge.
	ParentBottomRight
	// ParentCentre means an absolute distance from the reference
	// rectangle's centre.
	ParentCentre
	// ProportionOfParent means a fraction of the reference rectangle's
	// width or height, measured from its left or top.
	ProportionOfParent
)

func (b Basis) String() string {
	switch b {
	case ParentTopLeft:
		return "ParentTopLeft"
	case ParentBottomRight:
		return "ParentBottomRight"
	case ParentCentre:
		return "ParentCentre"
	case ProportionOfParent:
		return "ProportionOfParent"
	default:
		return ""
	}
}

// SizeMode selects how a raw width or height is interpreted.
type SizeMode int

const (
	// AbsoluteSize means the raw value is the size.
	AbsoluteSize SizeMode = iota
	// ParentMinusAbsolute means the raw value is subtracted from the
	// reference rectangle's width or height.
	ParentMinusAbsolute
	// ProportionalSize means the raw value is a fraction of the reference
	// rectangle's width or height, where 1.0 is the full extent.
	ProportionalSize
)

func (m SizeMode) String() string {
	switch m {
	case AbsoluteSize:
		return "AbsoluteSize"
	case ParentMinusAbsolute:
		return "ParentMinusAbsolute"
	case ProportionalSize:
		return "ProportionalSize"
	default:
		return ""
	}
}
