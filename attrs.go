package layout

import (
	"fmt"
	"strconv"
)

// Attribute keys a Relative descriptor persists under.
const (
	attrPos       = "pos"
	attrRelativeX = "posRelativeX"
	attrRelativeY = "posRelativeY"
	attrRelativeW = "posRelativeW"
	attrRelativeH = "posRelativeH"
)

// AttrGetter reads string attributes from a structured store, e.g. an XML
// element or a key-value node in a project file.
type AttrGetter interface {
	Attr(key string) (value string, ok bool)
}

// AttrSetter writes string attributes to a structured store.
type AttrSetter interface {
	SetAttr(key, value string)
}

// SaveAttrs writes the descriptor into s: the rectangle's text form under
// "pos" and each nonzero element reference hex-encoded under its own key.
// Unset references are omitted entirely.
func (rr Relative) SaveAttrs(s AttrSetter) {
	s.SetAttr(attrPos, rr.Rect.String())

	saveID(s, attrRelativeX, rr.RelativeToX)
	saveID(s, attrRelativeY, rr.RelativeToY)
	saveID(s, attrRelativeW, rr.RelativeToW)
	saveID(s, attrRelativeH, rr.RelativeToH)
}

func saveID(s AttrSetter, key string, id ElementID) {
	if id != 0 {
		s.SetAttr(key, strconv.FormatUint(uint64(id), 16))
	}
}

// LoadAttrs reads a descriptor from g. A missing attribute means the
// corresponding field of def, so callers control what absence defaults to.
// A malformed "pos" string or reference ID is an error and no partial
// descriptor is returned.
func LoadAttrs(g AttrGetter, def Relative) (Relative, error) {
	var rr Relative

	if s, ok := g.Attr(attrPos); ok {
		r, err := ParseRect(s)
		if err != nil {
			return Relative{}, fmt.Errorf("attribute %s: %w", attrPos, err)
		}
		rr.Rect = r
	} else {
		rr.Rect = def.Rect
	}

	var err error
	if rr.RelativeToX, err = loadID(g, attrRelativeX, def.RelativeToX); err != nil {
		return Relative{}, err
	}
	if rr.RelativeToY, err = loadID(g, attrRelativeY, def.RelativeToY); err != nil {
		return Relative{}, err
	}
	if rr.RelativeToW, err = loadID(g, attrRelativeW, def.RelativeToW); err != nil {
		return Relative{}, err
	}
	if rr.RelativeToH, err = loadID(g, attrRelativeH, def.RelativeToH); err != nil {
		return Relative{}, err
	}
	return rr, nil
}

func loadID(g AttrGetter, key string, def ElementID) (ElementID, error) {
	s, ok := g.Attr(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: invalid element ID %q", key, s)
	}
	return ElementID(v), nil
}

// MapAttrs is a map-backed attribute store for tests and tooling.
type MapAttrs map[string]string

func (m MapAttrs) Attr(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapAttrs) SetAttr(key, value string) {
	m[key] = value
}
