package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonitor_EmptyReport(t *testing.T) {
	m := NewMonitor()

	report := m.Report()

	assert.Equal(t, 0.0, report["rider_wait_time"])
	assert.Equal(t, 0.0, report["driver_total_distance"])
	assert.Equal(t, 0.0, report["driver_ride_distance"])
}

func TestMonitor_RiderWaitTime_AveragesRequestToResolution(t *testing.T) {
	m := NewMonitor()

	// r1 waits 2 ticks until pickup, r2 waits 6 ticks until cancelling.
	m.Notify(0, ActorRider, ActivityRequest, "r1", NewLocation(7, 7))
	m.Notify(2, ActorRider, ActivityPickup, "r1", NewLocation(7, 7))
	m.Notify(1, ActorRider, ActivityRequest, "r2", NewLocation(0, 0))
	m.Notify(7, ActorRider, ActivityCancel, "r2", NewLocation(0, 0))

	assert.InDelta(t, 4.0, m.Report()["rider_wait_time"], 1e-9)
}

func TestMonitor_RiderWaitTime_IgnoresUnresolvedRequests(t *testing.T) {
	m := NewMonitor()

	m.Notify(0, ActorRider, ActivityRequest, "r1", NewLocation(7, 7))
	m.Notify(2, ActorRider, ActivityPickup, "r1", NewLocation(7, 7))
	// r2's request is still pending at simulation end.
	m.Notify(5, ActorRider, ActivityRequest, "r2", NewLocation(0, 0))

	assert.InDelta(t, 2.0, m.Report()["rider_wait_time"], 1e-9)
}

func TestMonitor_DriverDistances(t *testing.T) {
	m := NewMonitor()

	// d1 requests at (3,5), picks up at (7,7) (6 units en route) and
	// drops off at (20,2) (18 units carrying), then requests again there.
	m.Notify(0, ActorDriver, ActivityRequest, "d1", NewLocation(3, 5))
	m.Notify(2, ActorDriver, ActivityPickup, "d1", NewLocation(7, 7))
	m.Notify(8, ActorDriver, ActivityDropoff, "d1", NewLocation(20, 2))
	m.Notify(8, ActorDriver, ActivityRequest, "d1", NewLocation(20, 2))

	report := m.Report()
	assert.InDelta(t, 24.0, report["driver_total_distance"], 1e-9)
	assert.InDelta(t, 18.0, report["driver_ride_distance"], 1e-9)
}

func TestMonitor_DriverDistances_AveragedAcrossDrivers(t *testing.T) {
	m := NewMonitor()

	// d1 drives 10 units carrying; d2 never moves.
	m.Notify(0, ActorDriver, ActivityPickup, "d1", NewLocation(0, 0))
	m.Notify(10, ActorDriver, ActivityDropoff, "d1", NewLocation(0, 10))
	m.Notify(0, ActorDriver, ActivityRequest, "d2", NewLocation(5, 5))

	report := m.Report()
	assert.InDelta(t, 5.0, report["driver_total_distance"], 1e-9)
	assert.InDelta(t, 5.0, report["driver_ride_distance"], 1e-9)
}

func TestMonitor_NumActivities(t *testing.T) {
	m := NewMonitor()
	assert.Equal(t, 0, m.NumActivities())

	m.Notify(0, ActorRider, ActivityRequest, "r1", NewLocation(0, 0))
	m.Notify(0, ActorDriver, ActivityRequest, "d1", NewLocation(1, 1))

	assert.Equal(t, 2, m.NumActivities())
}
