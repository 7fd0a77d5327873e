package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiderRequest_Matched_SchedulesPickupAndCancellation(t *testing.T) {
	// GIVEN a dispatcher with one idle registered driver
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	driver := makeDriver(t, "D0", NewLocation(3, 5), 3)
	dispatcher.RequestRider(driver)
	rider := makeRider(t, "R0", 10, NewLocation(7, 7), NewLocation(20, 2))

	// WHEN the rider requests at t=0
	followUps := NewRiderRequest(0, rider).Execute(dispatcher, monitor)

	// THEN a Pickup is scheduled after the travel time and the patience
	// deadline is scheduled unconditionally
	require.Len(t, followUps, 2)

	pickup, ok := followUps[0].(*Pickup)
	require.True(t, ok, "first follow-up should be a Pickup, got %T", followUps[0])
	assert.Equal(t, int64(2), pickup.Timestamp(), "pickup at t + round(6/3)")
	assert.Same(t, rider, pickup.Rider)
	assert.Same(t, driver, pickup.Driver)

	cancellation, ok := followUps[1].(*Cancellation)
	require.True(t, ok, "second follow-up should be a Cancellation, got %T", followUps[1])
	assert.Equal(t, int64(10), cancellation.Timestamp(), "deadline at t + patience")

	assert.Equal(t, DriverEnRouteToPickup, driver.Status)
	assert.Equal(t, 0, dispatcher.NumWaiting())
}

func TestRiderRequest_Unmatched_QueuesRiderAndSchedulesCancellation(t *testing.T) {
	// GIVEN a dispatcher with no drivers
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	rider := makeRider(t, "R0", 7, NewLocation(1, 1), NewLocation(2, 2))

	// WHEN the rider requests at t=3
	followUps := NewRiderRequest(3, rider).Execute(dispatcher, monitor)

	// THEN only the patience deadline is scheduled and the rider waits
	require.Len(t, followUps, 1)
	assert.IsType(t, &Cancellation{}, followUps[0])
	assert.Equal(t, int64(10), followUps[0].Timestamp())
	assert.Equal(t, 1, dispatcher.NumWaiting())
}

func TestDriverRequest_Matched_SchedulesPickup(t *testing.T) {
	// GIVEN a dispatcher with one waiting rider
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	rider := makeRider(t, "R0", 10, NewLocation(0, 4), NewLocation(9, 9))
	dispatcher.RequestDriver(rider)
	driver := makeDriver(t, "D0", NewLocation(0, 0), 2)

	// WHEN the driver requests at t=5
	followUps := NewDriverRequest(5, driver).Execute(dispatcher, monitor)

	// THEN a Pickup is scheduled after the travel time to the rider's origin
	require.Len(t, followUps, 1)
	pickup, ok := followUps[0].(*Pickup)
	require.True(t, ok)
	assert.Equal(t, int64(7), pickup.Timestamp(), "pickup at t + round(4/2)")
	assert.Same(t, rider, pickup.Rider)
	assert.Equal(t, 0, dispatcher.NumWaiting())
	assert.Equal(t, 1, dispatcher.NumDrivers())
}

func TestDriverRequest_Unmatched_RegistersDriverOnly(t *testing.T) {
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	driver := makeDriver(t, "D0", NewLocation(0, 0), 2)

	followUps := NewDriverRequest(5, driver).Execute(dispatcher, monitor)

	assert.Empty(t, followUps)
	assert.Equal(t, 1, dispatcher.NumDrivers())
	assert.True(t, driver.IsIdle())
}

func TestCancellation_WaitingRider_CancelsAndDequeues(t *testing.T) {
	// GIVEN a waiting rider in the queue
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	rider := makeRider(t, "R0", 5, NewLocation(1, 1), NewLocation(2, 2))
	dispatcher.RequestDriver(rider)

	// WHEN the patience deadline fires
	followUps := NewCancellation(5, rider).Execute(dispatcher, monitor)

	// THEN the rider is terminally cancelled and leaves the queue
	assert.Empty(t, followUps)
	assert.Equal(t, RiderCancelled, rider.Status)
	assert.Equal(t, 0, dispatcher.NumWaiting())
}

func TestCancellation_StaleDeadline_IsSilentNoOp(t *testing.T) {
	// GIVEN a rider that was already picked up
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	rider := makeRider(t, "R0", 5, NewLocation(1, 1), NewLocation(2, 2))
	rider.Satisfy()
	before := monitor.NumActivities()

	// WHEN the stale deadline fires
	followUps := NewCancellation(5, rider).Execute(dispatcher, monitor)

	// THEN nothing happens and nothing is reported
	assert.Empty(t, followUps)
	assert.Equal(t, RiderSatisfied, rider.Status)
	assert.Equal(t, before, monitor.NumActivities())
}

func TestPickup_WaitingRider_StartsRideAndSchedulesDropoff(t *testing.T) {
	// GIVEN a driver en route to a still-waiting rider
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	rider := makeRider(t, "R0", 10, NewLocation(7, 7), NewLocation(20, 2))
	driver := makeDriver(t, "D0", NewLocation(3, 5), 3)
	driver.StartDrive(rider.ID, rider.Origin)

	// WHEN the pickup fires at t=2
	followUps := NewPickup(2, rider, driver).Execute(dispatcher, monitor)

	// THEN the rider is satisfied, the driver carries toward the
	// destination, and the dropoff lands after the ride's travel time
	require.Len(t, followUps, 1)
	dropoff, ok := followUps[0].(*Dropoff)
	require.True(t, ok)
	assert.Equal(t, int64(8), dropoff.Timestamp(), "dropoff at t + round(18/3)")

	assert.Equal(t, RiderSatisfied, rider.Status)
	assert.Equal(t, DriverCarrying, driver.Status)
	assert.Equal(t, NewLocation(7, 7), driver.Location)
	require.NotNil(t, driver.Destination)
	assert.Equal(t, rider.Destination, *driver.Destination)
}

func TestPickup_CancelledRider_FreesDriverImmediately(t *testing.T) {
	// GIVEN a driver en route to a rider who lost patience
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	rider := makeRider(t, "R0", 3, NewLocation(7, 7), NewLocation(20, 2))
	driver := makeDriver(t, "D0", NewLocation(0, 0), 1)
	driver.StartDrive(rider.ID, rider.Origin)
	rider.Cancel()

	// WHEN the pickup fires at t=14
	followUps := NewPickup(14, rider, driver).Execute(dispatcher, monitor)

	// THEN the driver arrives at the moot pickup point and re-enters
	// matching with zero delay
	require.Len(t, followUps, 1)
	request, ok := followUps[0].(*DriverRequest)
	require.True(t, ok)
	assert.Equal(t, int64(14), request.Timestamp(), "re-request at the same timestamp")
	assert.Same(t, driver, request.Driver)

	assert.True(t, driver.IsIdle())
	assert.Equal(t, rider.Origin, driver.Location)
	assert.Equal(t, RiderCancelled, rider.Status, "cancelled is terminal")
}

func TestPickup_SatisfiedRider_IsNoOp(t *testing.T) {
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	rider := makeRider(t, "R0", 10, NewLocation(7, 7), NewLocation(20, 2))
	driver := makeDriver(t, "D0", NewLocation(3, 5), 3)
	driver.StartDrive(rider.ID, rider.Origin)
	rider.Satisfy()
	before := monitor.NumActivities()

	followUps := NewPickup(2, rider, driver).Execute(dispatcher, monitor)

	assert.Empty(t, followUps)
	assert.Equal(t, before, monitor.NumActivities())
}

func TestDropoff_FreesDriverAndRequestsNewRider(t *testing.T) {
	// GIVEN a driver carrying a rider
	dispatcher := NewDispatcher()
	monitor := NewMonitor()
	rider := makeRider(t, "R0", 10, NewLocation(7, 7), NewLocation(20, 2))
	driver := makeDriver(t, "D0", NewLocation(3, 5), 3)
	driver.StartDrive(rider.ID, rider.Origin)
	driver.EndDrive()
	rider.Satisfy()
	driver.StartRide(rider)

	// WHEN the dropoff fires at t=8
	followUps := NewDropoff(8, rider, driver).Execute(dispatcher, monitor)

	// THEN the driver is idle at the destination and re-enters matching
	// at the same timestamp
	require.Len(t, followUps, 1)
	request, ok := followUps[0].(*DriverRequest)
	require.True(t, ok)
	assert.Equal(t, int64(8), request.Timestamp())

	assert.True(t, driver.IsIdle())
	assert.Equal(t, NewLocation(20, 2), driver.Location)
	assert.Equal(t, RiderSatisfied, rider.Status)
}

func TestNewEvent_NegativeTimestamp_Panics(t *testing.T) {
	rider := makeRider(t, "R0", 10, NewLocation(7, 7), NewLocation(20, 2))
	assert.Panics(t, func() {
		NewRiderRequest(-1, rider)
	})
}
