package oarrow

import (
	"fmt"
	"strconv"
	"strings"

	oerrors "github.com/provide-io/oarrow/go/oarrow/pkg/oarrow/errors"
)

// Kind is the value type a parameter carries in a host's parameter store.
type Kind int

const (
	KindType  Kind = iota // root type tag, carries no value
	KindGroup             // sub-object marker, carries no value
	KindReal
	KindLong
	KindBool
)

var kindNames = map[Kind]string{
	KindType:  "TYPE",
	KindGroup: "GROUP",
	KindReal:  "REAL",
	KindLong:  "LONG",
	KindBool:  "BOOL",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND_%d", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for candidate, name := range kindNames {
		if name == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", text)
}

// HoldsValue reports whether parameters of this kind can be assigned.
func (k Kind) HoldsValue() bool {
	return k == KindReal || k == KindLong || k == KindBool
}

// Descriptor is the metadata of a single identifier.
type Descriptor struct {
	ID          ParamID `json:"id"`
	Name        string  `json:"name"`
	Group       Group   `json:"group"`
	Kind        Kind    `json:"kind"`
	Block       string  `json:"block"`
	Attr        string  `json:"attr,omitempty"`
	Description string  `json:"description"`
}

// Path is the dotted location of the parameter in a parameter document,
// e.g. "arrow.tip.length".
func (d Descriptor) Path() string {
	prefix := "arrow"
	if d.Block != "arrow" {
		prefix = "arrow." + d.Block
	}
	if d.Attr == "" {
		return prefix
	}
	return prefix + "." + d.Attr
}

// descriptors is keyed by the identifier constants, so two names sharing a
// code are rejected by the compiler as duplicate map keys.
var descriptors = map[ParamID]Descriptor{
	Oarrow: {Name: "Oarrow", Group: GroupRoot, Kind: KindType, Block: "arrow",
		Description: "Arrow primitive type tag"},

	OARROW_LENGTH: {Name: "OARROW_LENGTH", Group: GroupShape, Kind: KindReal, Block: "arrow", Attr: "length",
		Description: "Overall arrow length"},
	OARROW_ROTATION_SEGMENTS: {Name: "OARROW_ROTATION_SEGMENTS", Group: GroupShape, Kind: KindLong, Block: "arrow", Attr: "rotation_segments",
		Description: "Segments around the arrow axis"},

	OARROW_BASE: {Name: "OARROW_BASE", Group: GroupBase, Kind: KindGroup, Block: "base",
		Description: "Base sub-object"},
	OARROW_BASE_RADIUS: {Name: "OARROW_BASE_RADIUS", Group: GroupBase, Kind: KindReal, Block: "base", Attr: "radius",
		Description: "Shaft radius"},

	OARROW_TIP: {Name: "OARROW_TIP", Group: GroupTip, Kind: KindGroup, Block: "tip",
		Description: "Tip sub-object"},
	OARROW_TIP_RADIUS: {Name: "OARROW_TIP_RADIUS", Group: GroupTip, Kind: KindReal, Block: "tip", Attr: "radius",
		Description: "Arrowhead base radius"},
	OARROW_TIP_LENGTH: {Name: "OARROW_TIP_LENGTH", Group: GroupTip, Kind: KindReal, Block: "tip", Attr: "length",
		Description: "Arrowhead cone length"},

	OARROW_BEVEL: {Name: "OARROW_BEVEL", Group: GroupBevel, Kind: KindGroup, Block: "bevel",
		Description: "Bevel sub-object"},
	OARROW_BEVEL_ENABLE: {Name: "OARROW_BEVEL_ENABLE", Group: GroupBevel, Kind: KindBool, Block: "bevel", Attr: "enable",
		Description: "Apply bevel"},
	OARROW_BEVEL_RATIO: {Name: "OARROW_BEVEL_RATIO", Group: GroupBevel, Kind: KindReal, Block: "bevel", Attr: "ratio",
		Description: "Bevel size relative to adjacent geometry"},
	OARROW_BEVEL_SUBDIVISIONS: {Name: "OARROW_BEVEL_SUBDIVISIONS", Group: GroupBevel, Kind: KindLong, Block: "bevel", Attr: "subdivisions",
		Description: "Bevel subdivisions"},
}

// paramIDs is the reverse of descriptors, built once at startup.
var paramIDs = func() map[string]ParamID {
	m := make(map[string]ParamID, len(descriptors))
	for id, d := range descriptors {
		m[d.Name] = id
	}
	return m
}()

// Name returns the symbolic name of an identifier
func Name(id ParamID) string {
	if d, ok := descriptors[id]; ok {
		return d.Name
	}
	return "UNKNOWN"
}

func (id ParamID) String() string {
	if d, ok := descriptors[id]; ok {
		return d.Name
	}
	return fmt.Sprintf("UNKNOWN_%d", int32(id))
}

// Lookup returns the identifier with the exact symbolic name.
func Lookup(name string) (ParamID, bool) {
	id, ok := paramIDs[name]
	return id, ok
}

// Parse resolves a symbolic name (case-insensitive), a document path such as
// "tip.length" or "arrow.tip.length", or a decimal code of a declared
// identifier.
func Parse(s string) (ParamID, error) {
	s = strings.TrimSpace(s)
	if id, ok := paramIDs[s]; ok {
		return id, nil
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		id := ParamID(n)
		if IsKnown(id) {
			return id, nil
		}
		return 0, fmt.Errorf("%w: %d", oerrors.ErrUnknownID, n)
	}
	for _, id := range declared {
		d := descriptors[id]
		if strings.EqualFold(d.Name, s) || d.Path() == s || d.Path() == "arrow."+s {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", oerrors.ErrUnknownName, s)
}

// Describe returns the descriptor of a declared identifier.
func Describe(id ParamID) (Descriptor, error) {
	d, ok := descriptors[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %d", oerrors.ErrUnknownID, int32(id))
	}
	d.ID = id
	return d, nil
}

// Descriptors returns every descriptor in declaration order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(declared))
	for _, id := range declared {
		d := descriptors[id]
		d.ID = id
		out = append(out, d)
	}
	return out
}
