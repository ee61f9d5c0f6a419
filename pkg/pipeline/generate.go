package pipeline

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/Achu067/PLANEXA/pkg/errors"
	"github.com/Achu067/PLANEXA/pkg/gen/alloc"
	"github.com/Achu067/PLANEXA/pkg/gen/furnish"
	"github.com/Achu067/PLANEXA/pkg/gen/opening"
	"github.com/Achu067/PLANEXA/pkg/gen/pack"
	"github.com/Achu067/PLANEXA/pkg/gen/vertical"
	"github.com/Achu067/PLANEXA/pkg/plan"
)

// NewSeed returns a fresh time-derived seed for requests that don't pin one.
func NewSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Generate runs the full generation pipeline and returns the building model.
// The same options with the same seed produce an identical building.
func Generate(opts Options) (*plan.Building, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = NewSeed()
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	std := opts.Standards
	fp := plan.Footprint{Width: opts.Width, Length: opts.Length}

	reqs, err := alloc.Rooms(opts.Rooms, std)
	if err != nil {
		return nil, err
	}
	perFloor := alloc.Distribute(reqs, opts.Floors, fp)

	packer := pack.New(std, rng)
	openings := opening.New(std, rng)
	furnisher := furnish.New(std, rng)
	vert := vertical.New(std)

	b := &plan.Building{
		ID:    uuid.NewString(),
		Style: opts.Style,
		Seed:  seed,
	}

	for i := 0; i < opts.Floors; i++ {
		rooms, err := packer.Pack(perFloor[i], fp, opts.Style)
		if err != nil {
			return nil, errors.Wrap(wrapCode(err), err, "floor %d", i+1)
		}

		windows, doors := openings.Plan(rooms, opts.Style)
		if !opts.Windows() {
			windows = nil
		}
		if i > 0 {
			doors = interiorOnly(doors)
		}

		var furniture map[string][]plan.FurnitureItem
		if opts.Furniture() {
			furniture = furnisher.Layout(rooms, opts.Style)
		}

		b.Floors = append(b.Floors, &plan.Floor{
			Number:      i + 1,
			Footprint:   fp,
			Height:      std.Circulation.FloorHeight,
			GroundFloor: i == 0,
			TopFloor:    i == opts.Floors-1,
			Features:    floorFeatures(i, opts.Floors),
			Rooms:       rooms,
			Walls:       pack.Walls(rooms),
			Windows:     windows,
			Doors:       doors,
			Furniture:   furniture,
		})
	}

	b.Stairs = vert.Stairs(fp, opts.Floors)
	b.Elevators = vert.Elevators(fp, opts.Floors)
	vertical.Link(b)

	for _, f := range b.Floors {
		plan.ComputeFloorMetrics(f)
	}
	plan.ComputeBuildingMetrics(b)

	return b, nil
}

// interiorOnly drops exterior doors; only the ground floor opens outside.
func interiorOnly(doors []plan.Door) []plan.Door {
	kept := doors[:0]
	for _, d := range doors {
		if d.Kind == plan.DoorInterior {
			kept = append(kept, d)
		}
	}
	return kept
}

func floorFeatures(i, count int) []string {
	var features []string
	if i == 0 {
		features = append(features, "main_entrance", "lobby")
	}
	if i == count-1 {
		features = append(features, "roof_access")
	}
	return features
}

func wrapCode(err error) errors.Code {
	if code := errors.GetCode(err); code != "" {
		return code
	}
	return errors.ErrCodeInternal
}
