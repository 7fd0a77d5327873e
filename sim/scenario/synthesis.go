// Generates a random driver/rider population from a SynthesisSpec.
// Generation is fully driven by a seeded PRNG, including the uuid-based
// entity IDs, so the same seed always yields the same initial events.

package scenario

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Tefika24/taxi-app-official/sim"
)

// Synthesize generates initial DriverRequest and RiderRequest events per
// the spec, deterministically for a given seed.
func Synthesize(spec *SynthesisSpec, seed int64) ([]sim.Event, error) {
	rng := rand.New(rand.NewSource(seed))
	events := make([]sim.Event, 0, spec.NumDrivers+spec.NumRiders)

	for i := 0; i < spec.NumDrivers; i++ {
		id, err := entityID("driver", rng)
		if err != nil {
			return nil, err
		}
		driver, err := sim.NewDriver(id, randomLocation(rng, spec), 1+rng.Intn(spec.MaxSpeed))
		if err != nil {
			return nil, err
		}
		events = append(events, sim.NewDriverRequest(requestTime(rng, spec), driver))
	}

	for i := 0; i < spec.NumRiders; i++ {
		id, err := entityID("rider", rng)
		if err != nil {
			return nil, err
		}
		rider, err := sim.NewRider(id, 1+rng.Int63n(spec.MaxPatience),
			randomLocation(rng, spec), randomLocation(rng, spec))
		if err != nil {
			return nil, err
		}
		events = append(events, sim.NewRiderRequest(requestTime(rng, spec), rider))
	}

	logrus.Debugf("synthesized %d drivers and %d riders (seed %d)",
		spec.NumDrivers, spec.NumRiders, seed)
	return events, nil
}

func randomLocation(rng *rand.Rand, spec *SynthesisSpec) sim.Location {
	return sim.NewLocation(rng.Intn(spec.GridRows), rng.Intn(spec.GridCols))
}

func requestTime(rng *rand.Rand, spec *SynthesisSpec) int64 {
	if spec.RequestSpread == 0 {
		return 0
	}
	return rng.Int63n(spec.RequestSpread + 1)
}

// entityID derives a short unique ID from the seeded PRNG, so synthesized
// populations are reproducible yet collision-free.
func entityID(prefix string, rng *rand.Rand) (string, error) {
	u, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return "", fmt.Errorf("generate %s id: %w", prefix, err)
	}
	return fmt.Sprintf("%s-%s", prefix, u.String()[:8]), nil
}
