package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"bikeroom-analytics/internal/model"

	"github.com/google/uuid"
)

// Fixed vocabularies for the mock catalogue. Bike models carry non-uniform
// selection weights; categories and regions are sampled uniformly.
var (
	bikeModels = []string{
		"Speedster 3000",
		"Trail King Pro",
		"City Commuter E-3",
		"Gravel Explorer",
		"Aero Blade Race",
	}
	bikeModelWeights = []float64{0.25, 0.20, 0.30, 0.15, 0.10}

	categories = []string{"Road", "Mountain", "City", "Electric", "BMX"}
	regions    = []string{"North America", "Europe", "Asia", "Oceania"}
)

// Price distribution and bounds. Prices are rounded to the nearest $10
// before clamping.
const (
	priceMean   = 1800.0
	priceStdDev = 700.0
	priceMin    = 500.0
	priceMax    = 6000.0

	unitsMin = 1
	unitsMax = 50 // exclusive

	dateSpanDays = 365
)

// saleEpoch is the first day of the sales calendar year; dates are the
// epoch plus a uniform offset in [0, dateSpanDays) days.
var saleEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Spec holds the generation parameters. A nil Seed means a fresh random
// sample per cache miss; a fixed Seed makes the output reproducible.
type Spec struct {
	Rows int
	Seed *int64
}

// cacheKey builds the cache key from the generation parameters
func (s Spec) cacheKey() string {
	if s.Seed == nil {
		return fmt.Sprintf("rows=%d;seed=none", s.Rows)
	}
	return fmt.Sprintf("rows=%d;seed=%d", s.Rows, *s.Seed)
}

// Snapshot is a cached generation result
type Snapshot struct {
	ID        string        `json:"id"`
	Rows      int           `json:"rows"`
	CreatedAt time.Time     `json:"created_at"`
	Records   model.Dataset `json:"records"`
}

// Generator produces synthetic sales datasets and memoizes them per
// parameter set for the lifetime of the process. Callers must treat the
// returned records as read-only.
type Generator struct {
	mu    sync.Mutex
	cache map[string]*Snapshot
}

// New creates a Generator with an empty cache
func New() *Generator {
	return &Generator{cache: make(map[string]*Snapshot)}
}

// Generate returns the dataset for the given parameters, sampling it on
// the first call and serving the cached snapshot afterwards.
func (g *Generator) Generate(spec Spec) *Snapshot {
	key := spec.cacheKey()

	g.mu.Lock()
	defer g.mu.Unlock()

	if snap, ok := g.cache[key]; ok {
		return snap
	}

	records := sample(spec)
	snap := &Snapshot{
		ID:        uuid.New().String(),
		Rows:      spec.Rows,
		CreatedAt: time.Now().UTC(),
		Records:   records,
	}
	g.cache[key] = snap

	fmt.Printf("🚲 Generated dataset %s: %d records (%s)\n", snap.ID[:8], len(records), key)
	return snap
}

// Invalidate drops a cached snapshot so the next Generate resamples
func (g *Generator) Invalidate(spec Spec) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.cache, spec.cacheKey())
}

// sample draws a fresh dataset. Each field is sampled independently per
// record; the derived total is computed once at creation. The result is
// sorted by date for trend rendering.
func sample(spec Spec) model.Dataset {
	var rng *rand.Rand
	if spec.Seed != nil {
		rng = rand.New(rand.NewSource(*spec.Seed))
	} else {
		// Fresh source per call so unseeded generations never share state.
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	records := make(model.Dataset, 0, spec.Rows)
	for i := 0; i < spec.Rows; i++ {
		price := clamp(roundToTens(rng.NormFloat64()*priceStdDev+priceMean), priceMin, priceMax)
		units := unitsMin + rng.Intn(unitsMax-unitsMin)
		date := saleEpoch.AddDate(0, 0, rng.Intn(dateSpanDays))

		records = append(records, model.Record{
			BikeModel:     weightedChoice(rng, bikeModels, bikeModelWeights),
			Category:      categories[rng.Intn(len(categories))],
			Region:        regions[rng.Intn(len(regions))],
			PriceUSD:      price,
			UnitsSold:     units,
			Date:          date,
			TotalSalesUSD: price * float64(units),
		})

		if (i+1)%250 == 0 {
			fmt.Printf("   ...sampled %d/%d records\n", i+1, spec.Rows)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records
}

// weightedChoice draws one value according to the given selection weights.
// Weights are assumed to sum to 1; rounding drift falls through to the
// last value.
func weightedChoice(rng *rand.Rand, values []string, weights []float64) string {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return values[i]
		}
	}
	return values[len(values)-1]
}

// roundToTens rounds to the nearest multiple of 10
func roundToTens(v float64) float64 {
	return math.Round(v/10) * 10
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
