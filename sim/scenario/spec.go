// Defines the YAML scenario format, a declarative alternative to the
// line-oriented event file. A scenario lists drivers and riders with
// their request times, and may additionally carry a synthesis block that
// generates a random population on top of the explicit entries.

package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Tefika24/taxi-app-official/sim"
)

// Scenario is the top-level scenario configuration.
// Loaded from YAML via LoadScenario(path).
type Scenario struct {
	Seed      int64          `yaml:"seed,omitempty"`
	Drivers   []DriverSpec   `yaml:"drivers,omitempty"`
	Riders    []RiderSpec    `yaml:"riders,omitempty"`
	Synthesis *SynthesisSpec `yaml:"synthesis,omitempty"`
}

// DriverSpec declares one driver and when it first requests a rider.
type DriverSpec struct {
	ID          string `yaml:"id"`
	Location    string `yaml:"location"` // "row,col"
	Speed       int    `yaml:"speed"`
	RequestTime int64  `yaml:"request_time"`
}

// RiderSpec declares one rider and when they request a driver.
type RiderSpec struct {
	ID          string `yaml:"id"`
	Origin      string `yaml:"origin"`      // "row,col"
	Destination string `yaml:"destination"` // "row,col"
	Patience    int64  `yaml:"patience"`
	RequestTime int64  `yaml:"request_time"`
}

// SynthesisSpec configures random population generation. Locations are
// drawn uniformly over the grid, speeds from [1, max_speed], patience
// from [1, max_patience], and request times from [0, request_spread].
type SynthesisSpec struct {
	NumDrivers    int   `yaml:"num_drivers"`
	NumRiders     int   `yaml:"num_riders"`
	GridRows      int   `yaml:"grid_rows"`
	GridCols      int   `yaml:"grid_cols"`
	MaxSpeed      int   `yaml:"max_speed"`
	MaxPatience   int64 `yaml:"max_patience"`
	RequestSpread int64 `yaml:"request_spread"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the scenario to a YAML file.
func (s *Scenario) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}
	return nil
}

// Validate checks the scenario for values the simulation would reject.
func (s *Scenario) Validate() error {
	for i, d := range s.Drivers {
		if d.ID == "" {
			return fmt.Errorf("drivers[%d]: id must not be empty", i)
		}
		if d.Speed <= 0 {
			return fmt.Errorf("drivers[%d] (%s): speed must be positive, got %d", i, d.ID, d.Speed)
		}
		if d.RequestTime < 0 {
			return fmt.Errorf("drivers[%d] (%s): request_time must be non-negative, got %d", i, d.ID, d.RequestTime)
		}
		if _, err := sim.ParseLocation(d.Location); err != nil {
			return fmt.Errorf("drivers[%d] (%s): %w", i, d.ID, err)
		}
	}
	for i, r := range s.Riders {
		if r.ID == "" {
			return fmt.Errorf("riders[%d]: id must not be empty", i)
		}
		if r.Patience <= 0 {
			return fmt.Errorf("riders[%d] (%s): patience must be positive, got %d", i, r.ID, r.Patience)
		}
		if r.RequestTime < 0 {
			return fmt.Errorf("riders[%d] (%s): request_time must be non-negative, got %d", i, r.ID, r.RequestTime)
		}
		if _, err := sim.ParseLocation(r.Origin); err != nil {
			return fmt.Errorf("riders[%d] (%s): %w", i, r.ID, err)
		}
		if _, err := sim.ParseLocation(r.Destination); err != nil {
			return fmt.Errorf("riders[%d] (%s): %w", i, r.ID, err)
		}
	}
	if syn := s.Synthesis; syn != nil {
		if syn.NumDrivers < 0 || syn.NumRiders < 0 {
			return fmt.Errorf("synthesis: num_drivers and num_riders must be non-negative")
		}
		if syn.GridRows <= 0 || syn.GridCols <= 0 {
			return fmt.Errorf("synthesis: grid_rows and grid_cols must be positive")
		}
		if syn.MaxSpeed <= 0 {
			return fmt.Errorf("synthesis: max_speed must be positive, got %d", syn.MaxSpeed)
		}
		if syn.MaxPatience <= 0 {
			return fmt.Errorf("synthesis: max_patience must be positive, got %d", syn.MaxPatience)
		}
		if syn.RequestSpread < 0 {
			return fmt.Errorf("synthesis: request_spread must be non-negative, got %d", syn.RequestSpread)
		}
	}
	return nil
}

// Events converts the scenario into the initial event list: the explicit
// drivers and riders first, then the synthesized population, if any.
func (s *Scenario) Events() ([]sim.Event, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var events []sim.Event
	for _, d := range s.Drivers {
		location, err := sim.ParseLocation(d.Location)
		if err != nil {
			return nil, err
		}
		driver, err := sim.NewDriver(d.ID, location, d.Speed)
		if err != nil {
			return nil, err
		}
		events = append(events, sim.NewDriverRequest(d.RequestTime, driver))
	}
	for _, r := range s.Riders {
		origin, err := sim.ParseLocation(r.Origin)
		if err != nil {
			return nil, err
		}
		destination, err := sim.ParseLocation(r.Destination)
		if err != nil {
			return nil, err
		}
		rider, err := sim.NewRider(r.ID, r.Patience, origin, destination)
		if err != nil {
			return nil, err
		}
		events = append(events, sim.NewRiderRequest(r.RequestTime, rider))
	}

	if s.Synthesis != nil {
		synthesized, err := Synthesize(s.Synthesis, s.Seed)
		if err != nil {
			return nil, err
		}
		events = append(events, synthesized...)
	}
	return events, nil
}
