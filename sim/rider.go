// Defines the Rider entity. A rider starts out Waiting and transitions
// exactly once to either Cancelled or Satisfied; both are terminal.

package sim

import "fmt"

// RiderStatus represents the lifecycle state of a rider.
type RiderStatus string

const (
	RiderWaiting   RiderStatus = "waiting"
	RiderCancelled RiderStatus = "cancelled"
	RiderSatisfied RiderStatus = "satisfied"
)

// Rider is a passenger requesting a ride. Identity is by ID alone; two
// riders with the same ID are the same entity for all collection
// membership checks.
type Rider struct {
	ID          string
	Patience    int64 // ticks tolerated before giving up, always positive
	Origin      Location
	Destination Location
	Status      RiderStatus
}

// NewRider creates a waiting rider. Non-positive patience is rejected.
func NewRider(id string, patience int64, origin, destination Location) (*Rider, error) {
	if id == "" {
		return nil, fmt.Errorf("rider id must not be empty")
	}
	if patience <= 0 {
		return nil, fmt.Errorf("rider %s: patience must be positive, got %d", id, patience)
	}
	return &Rider{
		ID:          id,
		Patience:    patience,
		Origin:      origin,
		Destination: destination,
		Status:      RiderWaiting,
	}, nil
}

func (r *Rider) String() string {
	return fmt.Sprintf("Rider(id=%s, patience=%d, origin=%s, destination=%s, status=%s)",
		r.ID, r.Patience, r.Origin, r.Destination, r.Status)
}

// Cancel marks the rider cancelled. Callers must guard on the rider
// still Waiting; transitioning out of a terminal status is engine misuse.
func (r *Rider) Cancel() {
	if r.Status != RiderWaiting {
		panic(fmt.Sprintf("Cancel: rider %s is already %s", r.ID, r.Status))
	}
	r.Status = RiderCancelled
}

// Satisfy marks the rider picked up. Same terminal-status rule as Cancel.
func (r *Rider) Satisfy() {
	if r.Status != RiderWaiting {
		panic(fmt.Sprintf("Satisfy: rider %s is already %s", r.ID, r.Status))
	}
	r.Status = RiderSatisfied
}
