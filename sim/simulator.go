// sim/simulator.go
package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Simulation is the core object that owns simulation time, the pending
// event queue, the dispatcher, and the monitor. Execution is
// single-threaded and fully synchronous: every event runs to completion
// before the next one is popped, so no locking is needed anywhere.
type Simulation struct {
	Clock int64
	// Horizon cuts the run short once the next event lies beyond it.
	// Defaults to unbounded; the event population is finite, so the run
	// terminates either way.
	Horizon int64
	// EventQueue holds all pending events ordered by timestamp.
	EventQueue *EventHeap
	Dispatcher *Dispatcher
	Monitor    *Monitor
}

// NewSimulation creates a Simulation with an empty queue, a fresh
// dispatcher, and a fresh monitor.
func NewSimulation() *Simulation {
	return &Simulation{
		Clock:      0,
		Horizon:    math.MaxInt64,
		EventQueue: NewEventHeap(),
		Dispatcher: NewDispatcher(),
		Monitor:    NewMonitor(),
	}
}

// Schedule inserts an event into the pending queue.
func (s *Simulation) Schedule(ev Event) {
	s.EventQueue.Schedule(ev)
}

// Run executes the simulation on the given initial events and returns
// the monitor's final report. Events execute in non-decreasing timestamp
// order; follow-up events returned by an execution are scheduled before
// the next event is popped. Running with no initial events terminates
// immediately with an empty report.
func (s *Simulation) Run(initialEvents []Event) map[string]float64 {
	for _, ev := range initialEvents {
		s.Schedule(ev)
	}

	for s.EventQueue.Len() > 0 {
		next := s.EventQueue.Peek()
		if next.Timestamp() > s.Horizon {
			logrus.Infof("[tick %07d] horizon %d reached with %d events pending",
				s.Clock, s.Horizon, s.EventQueue.Len())
			break
		}
		ev := s.EventQueue.PopNext()
		s.Clock = ev.Timestamp()
		logrus.Debugf("[tick %07d] executing %v", s.Clock, ev)
		for _, followUp := range ev.Execute(s.Dispatcher, s.Monitor) {
			if followUp.Timestamp() < ev.Timestamp() {
				panic(fmt.Sprintf("follow-up %v scheduled before its trigger at %d", followUp, ev.Timestamp()))
			}
			s.Schedule(followUp)
		}
	}

	logrus.Infof("[tick %07d] simulation ended", s.Clock)
	return s.Monitor.Report()
}
