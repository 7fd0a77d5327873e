// Defines the closed set of simulation events and their execution
// semantics. Each event runs exactly once against the dispatcher and the
// monitor, mutates the entities it references, and returns the follow-up
// events it spawns. Events re-validate the referenced entity's current
// status before acting: a previously scheduled event is never removed
// from the queue, so stale events must degrade to no-ops.

package sim

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// EventType identifies one of the five simulation event kinds.
type EventType string

const (
	EventTypeRiderRequest  EventType = "RiderRequest"
	EventTypeDriverRequest EventType = "DriverRequest"
	EventTypeCancellation  EventType = "Cancellation"
	EventTypePickup        EventType = "Pickup"
	EventTypeDropoff       EventType = "Dropoff"
)

// EventTypePriority breaks ties between events sharing a timestamp:
// lower priority value executes first. Arrivals (pickups, dropoffs)
// resolve before same-instant requests and cancellations, so a driver
// arriving exactly at a rider's patience deadline still completes the
// pickup, and a dropoff's immediate DriverRequest observes the
// post-dropoff dispatcher state.
var EventTypePriority = map[EventType]int{
	EventTypePickup:        1,
	EventTypeDropoff:       2,
	EventTypeRiderRequest:  3,
	EventTypeDriverRequest: 4,
	EventTypeCancellation:  5,
}

// Global event ID counter for deterministic tie-breaking.
var globalEventID uint64

// Event is a scheduled state transition. Executing an event does not
// mutate the event itself; it mutates the driver, rider, and dispatcher
// it references and notifies the monitor.
type Event interface {
	Timestamp() int64
	EventID() uint64
	Type() EventType
	Execute(dispatcher *Dispatcher, monitor *Monitor) []Event
}

// BaseEvent provides the common event fields.
type BaseEvent struct {
	timestamp int64
	eventID   uint64
	eventType EventType
}

func newBaseEvent(timestamp int64, eventType EventType) BaseEvent {
	if timestamp < 0 {
		panic(fmt.Sprintf("%s: timestamp must be non-negative, got %d", eventType, timestamp))
	}
	return BaseEvent{
		timestamp: timestamp,
		eventID:   atomic.AddUint64(&globalEventID, 1),
		eventType: eventType,
	}
}

func (e *BaseEvent) Timestamp() int64 {
	return e.timestamp
}

func (e *BaseEvent) EventID() uint64 {
	return e.eventID
}

func (e *BaseEvent) Type() EventType {
	return e.eventType
}

// RiderRequest is a rider asking the dispatcher for a driver.
type RiderRequest struct {
	BaseEvent
	Rider *Rider
}

// NewRiderRequest creates a RiderRequest event.
func NewRiderRequest(timestamp int64, rider *Rider) *RiderRequest {
	return &RiderRequest{
		BaseEvent: newBaseEvent(timestamp, EventTypeRiderRequest),
		Rider:     rider,
	}
}

// Execute assigns the rider to the nearest idle driver or adds the rider
// to the waiting queue. Returns a Pickup when a driver was matched, and
// always a Cancellation at the rider's patience deadline. The deadline is
// scheduled even on a successful match; its Waiting-guard turns the stale
// event into a no-op once the rider has been picked up.
func (e *RiderRequest) Execute(dispatcher *Dispatcher, monitor *Monitor) []Event {
	monitor.Notify(e.timestamp, ActorRider, ActivityRequest, e.Rider.ID, e.Rider.Origin)

	var events []Event
	if driver := dispatcher.RequestDriver(e.Rider); driver != nil {
		travel := driver.TravelTime(e.Rider.Origin)
		events = append(events, NewPickup(e.timestamp+travel, e.Rider, driver))
	}
	events = append(events, NewCancellation(e.timestamp+e.Rider.Patience, e.Rider))
	return events
}

func (e *RiderRequest) String() string {
	return fmt.Sprintf("%d -- %s: request a driver", e.timestamp, e.Rider.ID)
}

// DriverRequest is a driver asking the dispatcher for a rider.
type DriverRequest struct {
	BaseEvent
	Driver *Driver
}

// NewDriverRequest creates a DriverRequest event.
func NewDriverRequest(timestamp int64, driver *Driver) *DriverRequest {
	return &DriverRequest{
		BaseEvent: newBaseEvent(timestamp, EventTypeDriverRequest),
		Driver:    driver,
	}
}

// Execute registers the driver if this is its first contact and matches
// it with the oldest waiting rider, if any. Returns a Pickup when a
// rider was matched.
func (e *DriverRequest) Execute(dispatcher *Dispatcher, monitor *Monitor) []Event {
	monitor.Notify(e.timestamp, ActorDriver, ActivityRequest, e.Driver.ID, e.Driver.Location)

	rider := dispatcher.RequestRider(e.Driver)
	if rider == nil {
		return nil
	}
	travel := e.Driver.TravelTime(rider.Origin)
	return []Event{NewPickup(e.timestamp+travel, rider, e.Driver)}
}

func (e *DriverRequest) String() string {
	return fmt.Sprintf("%d -- %s: request a rider", e.timestamp, e.Driver.ID)
}

// Cancellation is a rider's patience deadline expiring.
type Cancellation struct {
	BaseEvent
	Rider *Rider
}

// NewCancellation creates a Cancellation event.
func NewCancellation(timestamp int64, rider *Rider) *Cancellation {
	return &Cancellation{
		BaseEvent: newBaseEvent(timestamp, EventTypeCancellation),
		Rider:     rider,
	}
}

// Execute cancels the rider's request if the rider is still waiting.
// Riders already picked up or cancelled make this a silent no-op.
func (e *Cancellation) Execute(dispatcher *Dispatcher, monitor *Monitor) []Event {
	if e.Rider.Status != RiderWaiting {
		logrus.Debugf("stale cancellation for rider %s (%s)", e.Rider.ID, e.Rider.Status)
		return nil
	}
	e.Rider.Cancel()
	monitor.Notify(e.timestamp, ActorRider, ActivityCancel, e.Rider.ID, e.Rider.Origin)
	dispatcher.CancelRide(e.Rider)
	return nil
}

func (e *Cancellation) String() string {
	return fmt.Sprintf("%d -- %s: cancel the request", e.timestamp, e.Rider.ID)
}

// Pickup is a driver arriving at a rider's origin.
type Pickup struct {
	BaseEvent
	Rider  *Rider
	Driver *Driver
}

// NewPickup creates a Pickup event.
func NewPickup(timestamp int64, rider *Rider, driver *Driver) *Pickup {
	return &Pickup{
		BaseEvent: newBaseEvent(timestamp, EventTypePickup),
		Rider:     rider,
		Driver:    driver,
	}
}

// Execute completes the drive to the pickup point. If the rider is still
// waiting, the ride starts and a Dropoff is scheduled after the travel
// time to the rider's destination. If the rider cancelled in the
// meantime, the driver becomes idle and immediately re-enters matching
// via a DriverRequest at the same timestamp. An already-satisfied rider
// makes this a no-op.
func (e *Pickup) Execute(dispatcher *Dispatcher, monitor *Monitor) []Event {
	switch e.Rider.Status {
	case RiderWaiting:
		e.Driver.EndDrive()
		e.Rider.Satisfy()
		monitor.Notify(e.timestamp, ActorDriver, ActivityPickup, e.Driver.ID, e.Driver.Location)
		monitor.Notify(e.timestamp, ActorRider, ActivityPickup, e.Rider.ID, e.Rider.Origin)
		travel := e.Driver.StartRide(e.Rider)
		return []Event{NewDropoff(e.timestamp+travel, e.Rider, e.Driver)}
	case RiderCancelled:
		e.Driver.EndDrive()
		logrus.Debugf("driver %s arrived at cancelled rider %s", e.Driver.ID, e.Rider.ID)
		return []Event{NewDriverRequest(e.timestamp, e.Driver)}
	default:
		logrus.Debugf("stale pickup for rider %s (%s)", e.Rider.ID, e.Rider.Status)
		return nil
	}
}

func (e *Pickup) String() string {
	return fmt.Sprintf("%d -- %s: pick up rider %s", e.timestamp, e.Driver.ID, e.Rider.ID)
}

// Dropoff is a driver arriving at a rider's destination.
type Dropoff struct {
	BaseEvent
	Rider  *Rider
	Driver *Driver
}

// NewDropoff creates a Dropoff event.
func NewDropoff(timestamp int64, rider *Rider, driver *Driver) *Dropoff {
	return &Dropoff{
		BaseEvent: newBaseEvent(timestamp, EventTypeDropoff),
		Rider:     rider,
		Driver:    driver,
	}
}

// Execute completes the ride, frees the driver, and immediately re-enters
// it into matching via a DriverRequest at the same timestamp. The rider
// is defensively removed from the waiting queue; it is normally already
// absent.
func (e *Dropoff) Execute(dispatcher *Dispatcher, monitor *Monitor) []Event {
	e.Driver.EndRide()
	monitor.Notify(e.timestamp, ActorRider, ActivityDropoff, e.Rider.ID, e.Rider.Destination)
	monitor.Notify(e.timestamp, ActorDriver, ActivityDropoff, e.Driver.ID, e.Driver.Location)
	dispatcher.CancelRide(e.Rider)
	return []Event{NewDriverRequest(e.timestamp, e.Driver)}
}

func (e *Dropoff) String() string {
	return fmt.Sprintf("%d -- %s: drop off rider %s", e.timestamp, e.Driver.ID, e.Rider.ID)
}
