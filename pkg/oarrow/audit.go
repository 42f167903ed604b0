package oarrow

import (
	"errors"
	"fmt"

	oerrors "github.com/provide-io/oarrow/go/oarrow/pkg/oarrow/errors"
)

// Audit re-checks the registry at runtime: every code unique, inside the
// band of its group, and recoverable from its name. All violations are
// returned together.
func Audit() error {
	return audit(declared, descriptors)
}

func audit(order []ParamID, table map[ParamID]Descriptor) error {
	var errs []error

	reverse := make(map[string]ParamID, len(table))
	for id, d := range table {
		reverse[d.Name] = id
	}

	seen := make(map[ParamID]bool, len(order))
	for _, id := range order {
		d, ok := table[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %d has no descriptor", oerrors.ErrUnknownID, int32(id)))
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("%w: %s (%d) declared twice",
				oerrors.ErrDuplicateID, d.Name, int32(id)))
			continue
		}
		seen[id] = true

		if back := reverse[d.Name]; back != id {
			errs = append(errs, fmt.Errorf("%w: %s -> %d resolves back to %d",
				oerrors.ErrRoundTrip, d.Name, int32(id), int32(back)))
		}
		if got := GroupOf(id); got != d.Group {
			errs = append(errs, fmt.Errorf("%w: %s (%d) is in the %s band, declared %s",
				oerrors.ErrOutOfBand, d.Name, int32(id), got, d.Group))
		}
		if d.Kind == KindGroup && !IsGroupMarker(id) {
			errs = append(errs, fmt.Errorf("%w: group marker %s (%d) is not an x000 code",
				oerrors.ErrOutOfBand, d.Name, int32(id)))
		}
	}

	for id, d := range table {
		if !seen[id] {
			errs = append(errs, fmt.Errorf("%w: %s (%d) described but not declared",
				oerrors.ErrUnknownID, d.Name, int32(id)))
		}
	}

	return errors.Join(errs...)
}
