package oarrow

import (
	"errors"
	"testing"

	oerrors "github.com/provide-io/oarrow/go/oarrow/pkg/oarrow/errors"
)

func TestAuditRegistry(t *testing.T) {
	if err := Audit(); err != nil {
		t.Fatalf("Audit() = %v", err)
	}
}

func cloneTable() map[ParamID]Descriptor {
	out := make(map[ParamID]Descriptor, len(descriptors))
	for id, d := range descriptors {
		out[id] = d
	}
	return out
}

func TestAuditViolations(t *testing.T) {
	testCases := []struct {
		name    string
		order   []ParamID
		table   func() map[ParamID]Descriptor
		wantErr error
	}{
		{
			name:    "declared twice",
			order:   append(IDs(), OARROW_TIP),
			table:   cloneTable,
			wantErr: oerrors.ErrDuplicateID,
		},
		{
			name:  "out of band",
			order: append(IDs(), 2500),
			table: func() map[ParamID]Descriptor {
				tbl := cloneTable()
				tbl[2500] = Descriptor{Name: "OARROW_TIP_TWIST", Group: GroupTip, Kind: KindReal}
				return tbl
			},
			wantErr: oerrors.ErrOutOfBand,
		},
		{
			name:  "marker not on boundary",
			order: append(IDs(), 2010),
			table: func() map[ParamID]Descriptor {
				tbl := cloneTable()
				tbl[2010] = Descriptor{Name: "OARROW_BASE_CAP", Group: GroupBase, Kind: KindGroup}
				return tbl
			},
			wantErr: oerrors.ErrOutOfBand,
		},
		{
			name:  "name reused",
			order: append(IDs(), 3003),
			table: func() map[ParamID]Descriptor {
				tbl := cloneTable()
				tbl[3003] = Descriptor{Name: "OARROW_TIP_LENGTH", Group: GroupTip, Kind: KindReal}
				return tbl
			},
			wantErr: oerrors.ErrRoundTrip,
		},
		{
			name:    "undescribed id",
			order:   append(IDs(), 4010),
			table:   cloneTable,
			wantErr: oerrors.ErrUnknownID,
		},
		{
			name:  "undeclared descriptor",
			order: IDs(),
			table: func() map[ParamID]Descriptor {
				tbl := cloneTable()
				tbl[4010] = Descriptor{Name: "OARROW_BEVEL_PROFILE", Group: GroupBevel, Kind: KindLong}
				return tbl
			},
			wantErr: oerrors.ErrUnknownID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := audit(tc.order, tc.table())
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("audit() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
