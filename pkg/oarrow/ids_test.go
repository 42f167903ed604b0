package oarrow

import (
	"testing"

	"github.com/hashicorp/go-hclog"
)

// TestIdentifierCodes pins every code to the value in the description header
func TestIdentifierCodes(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "ids_test",
		Level: hclog.Trace,
	})

	testCases := []struct {
		name     string
		id       ParamID
		expected int32
	}{
		{"Oarrow", Oarrow, 1062186},
		{"OARROW_LENGTH", OARROW_LENGTH, 1000},
		{"OARROW_ROTATION_SEGMENTS", OARROW_ROTATION_SEGMENTS, 1001},
		{"OARROW_BASE", OARROW_BASE, 2000},
		{"OARROW_BASE_RADIUS", OARROW_BASE_RADIUS, 2001},
		{"OARROW_TIP", OARROW_TIP, 3000},
		{"OARROW_TIP_RADIUS", OARROW_TIP_RADIUS, 3001},
		{"OARROW_TIP_LENGTH", OARROW_TIP_LENGTH, 3002},
		{"OARROW_BEVEL", OARROW_BEVEL, 4000},
		{"OARROW_BEVEL_ENABLE", OARROW_BEVEL_ENABLE, 4001},
		{"OARROW_BEVEL_RATIO", OARROW_BEVEL_RATIO, 4002},
		{"OARROW_BEVEL_SUBDIVISIONS", OARROW_BEVEL_SUBDIVISIONS, 4003},
	}

	if len(testCases) != len(IDs()) {
		t.Fatalf("registry has %d identifiers, test covers %d", len(IDs()), len(testCases))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger.Debug("🔍 Checking code", "name", tc.name, "id", int32(tc.id))

			if int32(tc.id) != tc.expected {
				t.Errorf("%s = %d, want %d", tc.name, int32(tc.id), tc.expected)
			}
			if got := Name(tc.id); got != tc.name {
				t.Errorf("Name(%d) = %q, want %q", tc.expected, got, tc.name)
			}
			if got, ok := Lookup(tc.name); !ok || got != tc.id {
				t.Errorf("Lookup(%q) = %d, %v; want %d, true", tc.name, got, ok, tc.expected)
			}
		})
	}
}

// TestIdentifiersUnique checks that no two names share a code
func TestIdentifiersUnique(t *testing.T) {
	ids := IDs()
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				t.Errorf("%s and %s share code %d", Name(ids[i]), Name(ids[j]), int32(ids[i]))
			}
		}
	}
}

// TestNameRoundTrip encodes each name to its code and back
func TestNameRoundTrip(t *testing.T) {
	for _, id := range IDs() {
		name := Name(id)
		back, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) not found", name)
			continue
		}
		if back != id {
			t.Errorf("round trip %d -> %q -> %d", int32(id), name, int32(back))
		}
		if Name(back) != name {
			t.Errorf("round trip %q -> %d -> %q", name, int32(back), Name(back))
		}
	}
}

// TestRepeatedReadsStable guards against the registry being mutable through
// its accessors
func TestRepeatedReadsStable(t *testing.T) {
	first := IDs()
	first[0] = 0

	for i := 0; i < 3; i++ {
		ids := IDs()
		if len(ids) != 12 {
			t.Fatalf("read %d: len(IDs()) = %d, want 12", i, len(ids))
		}
		if ids[0] != Oarrow {
			t.Fatalf("read %d: IDs()[0] = %d, want %d", i, int32(ids[0]), int32(Oarrow))
		}
		if Name(OARROW_BEVEL_RATIO) != "OARROW_BEVEL_RATIO" {
			t.Fatalf("read %d: Name(OARROW_BEVEL_RATIO) = %q", i, Name(OARROW_BEVEL_RATIO))
		}
	}

	members := Members(GroupTip)
	members[0] = OARROW_BEVEL
	if Members(GroupTip)[0] != OARROW_TIP {
		t.Errorf("Members(GroupTip) was modified through a returned slice")
	}
}

func TestConcreteLookups(t *testing.T) {
	if OARROW_BEVEL_RATIO != 4002 {
		t.Errorf("OARROW_BEVEL_RATIO = %d, want 4002", OARROW_BEVEL_RATIO)
	}
	if Oarrow != 1062186 {
		t.Errorf("Oarrow = %d, want 1062186", Oarrow)
	}
}

func TestUnknownIdentifier(t *testing.T) {
	if IsKnown(4004) {
		t.Errorf("IsKnown(4004) = true")
	}
	if got := Name(4004); got != "UNKNOWN" {
		t.Errorf("Name(4004) = %q, want UNKNOWN", got)
	}
	if got := ParamID(4004).String(); got != "UNKNOWN_4004" {
		t.Errorf("ParamID(4004).String() = %q, want UNKNOWN_4004", got)
	}
	if got := OARROW_TIP_LENGTH.String(); got != "OARROW_TIP_LENGTH" {
		t.Errorf("OARROW_TIP_LENGTH.String() = %q", got)
	}
	if _, ok := Lookup("OARROW_HANDLE"); ok {
		t.Errorf("Lookup(OARROW_HANDLE) found an identifier")
	}
}
