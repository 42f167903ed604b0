// Package oarrow defines the parameter identifiers of the arrow primitive.
//
// Codes are grouped into bands of one thousand so a consumer can classify an
// identifier by its value alone: 1000s hold the top-level shape parameters,
// 2000s the base, 3000s the tip and 4000s the bevel. The x000 code of the
// base, tip and bevel bands marks the sub-object itself.
package oarrow

// ParamID is the integer code a host uses as the key of an arrow parameter.
type ParamID int32

// Parameter identifiers, matching res/description/oarrow.h
const (
	// Root type tag of the primitive
	Oarrow ParamID = 1062186

	// 1000-1999: Shape parameters
	OARROW_LENGTH            ParamID = 1000
	OARROW_ROTATION_SEGMENTS ParamID = 1001

	// 2000-2999: Base (shaft)
	OARROW_BASE        ParamID = 2000
	OARROW_BASE_RADIUS ParamID = 2001

	// 3000-3999: Tip (arrowhead)
	OARROW_TIP        ParamID = 3000
	OARROW_TIP_RADIUS ParamID = 3001
	OARROW_TIP_LENGTH ParamID = 3002

	// 4000-4999: Bevel
	OARROW_BEVEL              ParamID = 4000
	OARROW_BEVEL_ENABLE       ParamID = 4001
	OARROW_BEVEL_RATIO        ParamID = 4002
	OARROW_BEVEL_SUBDIVISIONS ParamID = 4003
)

// declared lists every identifier in header order
var declared = []ParamID{
	Oarrow,
	OARROW_LENGTH,
	OARROW_ROTATION_SEGMENTS,
	OARROW_BASE,
	OARROW_BASE_RADIUS,
	OARROW_TIP,
	OARROW_TIP_RADIUS,
	OARROW_TIP_LENGTH,
	OARROW_BEVEL,
	OARROW_BEVEL_ENABLE,
	OARROW_BEVEL_RATIO,
	OARROW_BEVEL_SUBDIVISIONS,
}

// IDs returns every identifier in declaration order.
// The slice is a copy; callers may modify it freely.
func IDs() []ParamID {
	out := make([]ParamID, len(declared))
	copy(out, declared)
	return out
}

// IsKnown reports whether id is one of the declared identifiers.
func IsKnown(id ParamID) bool {
	_, ok := descriptors[id]
	return ok
}
