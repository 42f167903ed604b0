// Package paramset holds arrow parameter values keyed by their registry
// identifiers and reads/writes them as HCL documents.
package paramset

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/provide-io/oarrow/go/oarrow/pkg/oarrow"
	oerrors "github.com/provide-io/oarrow/go/oarrow/pkg/oarrow/errors"
)

type value struct {
	kind oarrow.Kind
	real float64
	long int64
	flag bool
}

func (v value) any() interface{} {
	switch v.kind {
	case oarrow.KindReal:
		return v.real
	case oarrow.KindLong:
		return v.long
	default:
		return v.flag
	}
}

// Set is a collection of parameter values. The zero value is not usable;
// create one with New. A Set is not safe for concurrent mutation.
type Set struct {
	values map[oarrow.ParamID]value
}

// New returns an empty Set.
func New() *Set {
	return &Set{values: make(map[oarrow.ParamID]value)}
}

// assignable checks that id is declared, holds a value, and has kind want.
func assignable(id oarrow.ParamID, want oarrow.Kind) (oarrow.Descriptor, error) {
	d, err := oarrow.Describe(id)
	if err != nil {
		return d, err
	}
	if !d.Kind.HoldsValue() {
		return d, fmt.Errorf("%w: %s is a %s", oerrors.ErrNotAssignable, d.Name, d.Kind)
	}
	if d.Kind != want {
		return d, fmt.Errorf("%w: %s is %s, got %s", oerrors.ErrKindMismatch, d.Name, d.Kind, want)
	}
	return d, nil
}

// SetReal assigns a real parameter. Lengths, radii and ratios must be
// finite and non-negative.
func (s *Set) SetReal(id oarrow.ParamID, v float64) error {
	d, err := assignable(id, oarrow.KindReal)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s = %v, must be a finite value >= 0", oerrors.ErrInvalidValue, d.Name, v)
	}
	s.values[id] = value{kind: oarrow.KindReal, real: v}
	return nil
}

// SetLong assigns an integer parameter. Segment and subdivision counts must
// be at least 1.
func (s *Set) SetLong(id oarrow.ParamID, v int64) error {
	d, err := assignable(id, oarrow.KindLong)
	if err != nil {
		return err
	}
	if v < 1 {
		return fmt.Errorf("%w: %s = %d, must be >= 1", oerrors.ErrInvalidValue, d.Name, v)
	}
	s.values[id] = value{kind: oarrow.KindLong, long: v}
	return nil
}

// SetBool assigns a boolean parameter.
func (s *Set) SetBool(id oarrow.ParamID, v bool) error {
	if _, err := assignable(id, oarrow.KindBool); err != nil {
		return err
	}
	s.values[id] = value{kind: oarrow.KindBool, flag: v}
	return nil
}

func (s *Set) Real(id oarrow.ParamID) (float64, bool) {
	v, ok := s.values[id]
	if !ok || v.kind != oarrow.KindReal {
		return 0, false
	}
	return v.real, true
}

func (s *Set) Long(id oarrow.ParamID) (int64, bool) {
	v, ok := s.values[id]
	if !ok || v.kind != oarrow.KindLong {
		return 0, false
	}
	return v.long, true
}

func (s *Set) Bool(id oarrow.ParamID) (bool, bool) {
	v, ok := s.values[id]
	if !ok || v.kind != oarrow.KindBool {
		return false, false
	}
	return v.flag, true
}

// Get returns the value of id as float64, int64 or bool.
func (s *Set) Get(id oarrow.ParamID) (interface{}, bool) {
	v, ok := s.values[id]
	if !ok {
		return nil, false
	}
	return v.any(), true
}

func (s *Set) Has(id oarrow.ParamID) bool {
	_, ok := s.values[id]
	return ok
}

// Delete removes id from the set. Deleting an absent id is a no-op.
func (s *Set) Delete(id oarrow.ParamID) {
	delete(s.values, id)
}

func (s *Set) Len() int {
	return len(s.values)
}

// IDs returns the identifiers present in the set in ascending order.
func (s *Set) IDs() []oarrow.ParamID {
	ids := make([]oarrow.ParamID, 0, len(s.values))
	for id := range s.values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MarshalJSON encodes the set as an object keyed by symbolic name.
func (s *Set) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.values))
	for id, v := range s.values {
		out[oarrow.Name(id)] = v.any()
	}
	return json.Marshal(out)
}
