package version

import "testing"

func TestFields(t *testing.T) {
	fields := Fields()
	if len(fields) != 3 {
		t.Fatalf("len(Fields()) = %d, want 3", len(fields))
	}
	if fields[0].Key != "version" || fields[0].String != Version {
		t.Errorf("version field = %+v", fields[0])
	}
}
