// Tracks the activities notified by event execution and aggregates them
// into the end-of-run report: average rider wait time, average distance
// driven per driver, and average ride distance per driver.

package sim

// ActorKind distinguishes who performed an activity.
type ActorKind string

const (
	ActorRider  ActorKind = "rider"
	ActorDriver ActorKind = "driver"
)

// Activity is what an actor did at a point in simulated time.
type Activity string

const (
	ActivityRequest Activity = "request"
	ActivityCancel  Activity = "cancel"
	ActivityPickup  Activity = "pickup"
	ActivityDropoff Activity = "dropoff"
)

// ActivityRecord is a single notification received by the monitor.
type ActivityRecord struct {
	Timestamp int64
	Activity  Activity
	Location  Location
}

// Monitor records activities per actor, in execution order, and produces
// aggregate statistics at simulation end.
type Monitor struct {
	activities map[ActorKind]map[string][]ActivityRecord
}

// NewMonitor creates an empty Monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		activities: map[ActorKind]map[string][]ActivityRecord{
			ActorRider:  make(map[string][]ActivityRecord),
			ActorDriver: make(map[string][]ActivityRecord),
		},
	}
}

// Notify records that the actor performed the activity at the given time
// and location.
func (m *Monitor) Notify(timestamp int64, actor ActorKind, activity Activity, id string, location Location) {
	m.activities[actor][id] = append(m.activities[actor][id], ActivityRecord{
		Timestamp: timestamp,
		Activity:  activity,
		Location:  location,
	})
}

// NumActivities returns the total number of recorded notifications.
func (m *Monitor) NumActivities() int {
	n := 0
	for _, actors := range m.activities {
		for _, records := range actors {
			n += len(records)
		}
	}
	return n
}

// Report returns the aggregate simulation statistics.
func (m *Monitor) Report() map[string]float64 {
	return map[string]float64{
		"rider_wait_time":       m.averageRiderWaitTime(),
		"driver_total_distance": m.averageDriverTotalDistance(),
		"driver_ride_distance":  m.averageDriverRideDistance(),
	}
}

// averageRiderWaitTime is the mean time between a rider's request and the
// outcome that resolved it (pickup or cancellation). Riders whose request
// is still pending at simulation end are not counted.
func (m *Monitor) averageRiderWaitTime() float64 {
	var total int64
	count := 0
	for _, records := range m.activities[ActorRider] {
		if len(records) < 2 {
			continue
		}
		total += records[1].Timestamp - records[0].Timestamp
		count++
	}
	return mean(total, count)
}

// averageDriverTotalDistance is the mean distance covered per driver
// across all of its activities, both en route to pickups and carrying.
func (m *Monitor) averageDriverTotalDistance() float64 {
	var total int64
	count := 0
	for _, records := range m.activities[ActorDriver] {
		for i := 1; i < len(records); i++ {
			total += int64(ManhattanDistance(records[i-1].Location, records[i].Location))
		}
		count++
	}
	return mean(total, count)
}

// averageDriverRideDistance is the mean distance covered per driver while
// carrying riders, measured between each pickup and the following dropoff.
func (m *Monitor) averageDriverRideDistance() float64 {
	var total int64
	count := 0
	for _, records := range m.activities[ActorDriver] {
		var pickup *ActivityRecord
		for i := range records {
			switch records[i].Activity {
			case ActivityPickup:
				pickup = &records[i]
			case ActivityDropoff:
				if pickup != nil {
					total += int64(ManhattanDistance(pickup.Location, records[i].Location))
					pickup = nil
				}
			}
		}
		count++
	}
	return mean(total, count)
}

func mean(total int64, count int) float64 {
	if count == 0 {
		return 0.0
	}
	return float64(total) / float64(count)
}
