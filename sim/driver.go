// Defines the Driver entity and its state machine:
// Idle -> EnRouteToPickup -> Carrying -> Idle, with the
// EnRouteToPickup -> Idle shortcut for arrivals at a cancelled rider.

package sim

import (
	"fmt"
	"math"
)

// DriverStatus represents the lifecycle state of a driver.
type DriverStatus string

const (
	DriverIdle            DriverStatus = "idle"
	DriverEnRouteToPickup DriverStatus = "en_route_to_pickup"
	DriverCarrying        DriverStatus = "carrying"
)

// Driver is a car in the ride-sharing service. The location is only
// updated when a drive completes; while moving, Destination holds where
// the driver will be next. Invariant: Destination is non-nil iff the
// driver is not idle.
type Driver struct {
	ID       string
	Location Location
	Speed    int // grid units per tick, always positive

	Status      DriverStatus
	Destination *Location
	RiderID     string // rider the driver is en route to or carrying, "" when idle
}

// NewDriver creates an idle driver. Non-positive speeds are rejected so
// travel times can never divide by zero.
func NewDriver(id string, location Location, speed int) (*Driver, error) {
	if id == "" {
		return nil, fmt.Errorf("driver id must not be empty")
	}
	if speed <= 0 {
		return nil, fmt.Errorf("driver %s: speed must be positive, got %d", id, speed)
	}
	return &Driver{
		ID:       id,
		Location: location,
		Speed:    speed,
		Status:   DriverIdle,
	}, nil
}

func (d *Driver) String() string {
	return fmt.Sprintf("Driver(id=%s, location=%s, speed=%d, status=%s)",
		d.ID, d.Location, d.Speed, d.Status)
}

// IsIdle reports whether the driver is available for matching.
func (d *Driver) IsIdle() bool {
	return d.Status == DriverIdle
}

// TravelTime returns the ticks needed to reach destination from the
// driver's current location: round(ManhattanDistance / speed).
func (d *Driver) TravelTime(destination Location) int64 {
	distance := ManhattanDistance(d.Location, destination)
	return int64(math.Round(float64(distance) / float64(d.Speed)))
}

// StartDrive sends the driver toward a rider's pickup point and returns
// the drive duration in ticks.
func (d *Driver) StartDrive(riderID string, pickup Location) int64 {
	travel := d.TravelTime(pickup)
	d.Destination = &pickup
	d.Status = DriverEnRouteToPickup
	d.RiderID = riderID
	return travel
}

// EndDrive completes the drive: the driver arrives at the pickup point
// and becomes idle until a ride starts or a new request is made.
func (d *Driver) EndDrive() {
	if d.Destination == nil {
		panic(fmt.Sprintf("EndDrive: driver %s has no destination", d.ID))
	}
	d.Location = *d.Destination
	d.Destination = nil
	d.Status = DriverIdle
	d.RiderID = ""
}

// StartRide begins carrying the rider from their origin to their
// destination and returns the ride duration in ticks.
func (d *Driver) StartRide(rider *Rider) int64 {
	d.Location = rider.Origin
	destination := rider.Destination
	d.Destination = &destination
	d.Status = DriverCarrying
	d.RiderID = rider.ID
	return d.TravelTime(destination)
}

// EndRide completes the ride: the driver arrives at the rider's
// destination and becomes idle.
func (d *Driver) EndRide() {
	if d.Destination == nil {
		panic(fmt.Sprintf("EndRide: driver %s has no destination", d.ID))
	}
	d.Location = *d.Destination
	d.Destination = nil
	d.Status = DriverIdle
	d.RiderID = ""
}
