package oarrow

import "fmt"

// Group is the logical sub-object a parameter belongs to.
type Group int

const (
	GroupUnknown Group = iota
	GroupRoot
	GroupShape
	GroupBase
	GroupTip
	GroupBevel
)

// bandWidth is the size of each group's code range
const bandWidth = 1000

var groupNames = map[Group]string{
	GroupUnknown: "unknown",
	GroupRoot:    "root",
	GroupShape:   "shape",
	GroupBase:    "base",
	GroupTip:     "tip",
	GroupBevel:   "bevel",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("group(%d)", int(g))
}

func (g Group) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Group) UnmarshalText(text []byte) error {
	for candidate, name := range groupNames {
		if name == string(text) {
			*g = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown group %q", text)
}

// ParseGroup resolves a group by its lowercase name.
func ParseGroup(name string) (Group, bool) {
	for g, n := range groupNames {
		if g != GroupUnknown && n == name {
			return g, true
		}
	}
	return GroupUnknown, false
}

// Marker returns the sub-object marker of g, or false for groups without one.
func (g Group) Marker() (ParamID, bool) {
	switch g {
	case GroupBase:
		return OARROW_BASE, true
	case GroupTip:
		return OARROW_TIP, true
	case GroupBevel:
		return OARROW_BEVEL, true
	default:
		return 0, false
	}
}

// GroupOf classifies id by its numeric band. It does not require id to be
// declared: 2042 is a base-band code even though nothing uses it.
func GroupOf(id ParamID) Group {
	if id == Oarrow {
		return GroupRoot
	}
	switch id / bandWidth {
	case 1:
		return GroupShape
	case 2:
		return GroupBase
	case 3:
		return GroupTip
	case 4:
		return GroupBevel
	default:
		return GroupUnknown
	}
}

// IsShapeParam returns true if id lies in the top-level shape band
func IsShapeParam(id ParamID) bool {
	return id >= 1000 && id <= 1999
}

// IsBaseParam returns true if id lies in the base band
func IsBaseParam(id ParamID) bool {
	return id >= 2000 && id <= 2999
}

// IsTipParam returns true if id lies in the tip band
func IsTipParam(id ParamID) bool {
	return id >= 3000 && id <= 3999
}

// IsBevelParam returns true if id lies in the bevel band
func IsBevelParam(id ParamID) bool {
	return id >= 4000 && id <= 4999
}

// IsGroupMarker returns true if id is the x000 code of a sub-object band.
// The shape band has no marker; 1000 is OARROW_LENGTH.
func IsGroupMarker(id ParamID) bool {
	switch GroupOf(id) {
	case GroupBase, GroupTip, GroupBevel:
		return id%bandWidth == 0
	default:
		return false
	}
}

// Members returns the declared identifiers of g in declaration order.
func Members(g Group) []ParamID {
	var out []ParamID
	for _, id := range declared {
		if descriptors[id].Group == g {
			out = append(out, id)
		}
	}
	return out
}
