package sim

import "testing"

// makeDriver builds a valid driver for tests, failing the test on error.
func makeDriver(t *testing.T, id string, location Location, speed int) *Driver {
	t.Helper()
	d, err := NewDriver(id, location, speed)
	if err != nil {
		t.Fatalf("NewDriver(%s): %v", id, err)
	}
	return d
}

// makeRider builds a valid rider for tests, failing the test on error.
func makeRider(t *testing.T, id string, patience int64, origin, destination Location) *Rider {
	t.Helper()
	r, err := NewRider(id, patience, origin, destination)
	if err != nil {
		t.Fatalf("NewRider(%s): %v", id, err)
	}
	return r
}
