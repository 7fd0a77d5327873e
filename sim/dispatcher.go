// Implements the Dispatcher, the matching surface between idle drivers
// and waiting riders. The dispatcher does no time bookkeeping: it is
// invoked synchronously by event execution and never schedules events.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Dispatcher pairs idle drivers with riders. Drivers are kept in
// registration order so that ties in travel time are broken in favor of
// the earliest-registered driver. Riders that cannot be matched wait in
// a FIFO queue for the next available driver.
type Dispatcher struct {
	drivers []*Driver
	byID    map[string]*Driver
	waiting *RiderQueue
}

// NewDispatcher creates a Dispatcher with no drivers and no waiting riders.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		drivers: make([]*Driver, 0),
		byID:    make(map[string]*Driver),
		waiting: &RiderQueue{},
	}
}

func (d *Dispatcher) String() string {
	return fmt.Sprintf("Dispatcher with %d riders waiting and %d registered drivers",
		d.waiting.Len(), len(d.drivers))
}

// RequestDriver returns the registered idle driver with the smallest
// travel time to the rider's origin, flipped to en-route-to-pickup, or
// nil after appending the rider to the waiting queue when no idle driver
// exists. Exactly one of the two happens on every call. The caller is
// responsible for computing travel time and scheduling the pickup.
func (d *Dispatcher) RequestDriver(rider *Rider) *Driver {
	var best *Driver
	var bestTime int64
	for _, driver := range d.drivers {
		if !driver.IsIdle() {
			continue
		}
		travel := driver.TravelTime(rider.Origin)
		if best == nil || travel < bestTime {
			best = driver
			bestTime = travel
		}
	}
	if best == nil {
		d.waiting.Enqueue(rider)
		logrus.Debugf("no idle driver for rider %s; %d riders now waiting", rider.ID, d.waiting.Len())
		return nil
	}
	best.StartDrive(rider.ID, rider.Origin)
	logrus.Debugf("driver %s assigned to rider %s (travel %d ticks)", best.ID, rider.ID, bestTime)
	return best
}

// RequestRider registers the driver if it is new, then matches it with
// the oldest waiting rider, if any. Registration happens whether or not
// a match occurs and is idempotent by driver ID.
func (d *Dispatcher) RequestRider(driver *Driver) *Rider {
	d.register(driver)
	rider := d.waiting.Dequeue()
	if rider == nil {
		return nil
	}
	driver.StartDrive(rider.ID, rider.Origin)
	logrus.Debugf("driver %s assigned to waiting rider %s", driver.ID, rider.ID)
	return rider
}

// CancelRide removes the rider from the waiting queue. No-op if the
// rider is not waiting (already matched, already removed, or never
// queued); safe to call multiple times.
func (d *Dispatcher) CancelRide(rider *Rider) {
	d.waiting.Remove(rider.ID)
}

// NumWaiting returns the number of riders in the waiting queue.
func (d *Dispatcher) NumWaiting() int {
	return d.waiting.Len()
}

// NumDrivers returns the number of registered drivers.
func (d *Dispatcher) NumDrivers() int {
	return len(d.drivers)
}

func (d *Dispatcher) register(driver *Driver) {
	if existing, ok := d.byID[driver.ID]; ok {
		if existing != driver {
			panic(fmt.Sprintf("dispatcher: driver id %s already registered to a different driver", driver.ID))
		}
		return
	}
	d.byID[driver.ID] = driver
	d.drivers = append(d.drivers, driver)
}
