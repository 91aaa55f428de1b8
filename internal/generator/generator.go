package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/jengzang/campus-security-backend-go/internal/models"
)

// Generation parameters for the synthetic demo dataset
const (
	// DefaultCount is the dataset size when the caller does not specify one
	DefaultCount = 150

	anomalyRate = 0.15
	entityPool  = 50 // ENT_000 .. ENT_049
	windowDays  = 7
)

// Generator produces synthetic activity records as a stand-in for real
// ingestion. It is deliberately unseeded: demo datasets are not meant to
// be reproducible.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a generator with its own random source
func New() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// Generate produces count synthetic records sorted by timestamp
// descending (most recent first). Timestamps are drawn uniformly from
// the trailing 7 days. Count must be positive.
func (g *Generator) Generate(count int) ([]models.ActivityRecord, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	now := g.now()
	window := float64(windowDays * 24 * time.Hour)

	records := make([]models.ActivityRecord, 0, count)
	for i := 0; i < count; i++ {
		isAnomaly := g.rng.Float64() < anomalyRate

		// Anomalous scores are always negative, normal scores always
		// positive; IsAnomaly and the sign are set together so the
		// invariant holds by construction.
		var score float64
		if isAnomaly {
			score = -0.8 - g.rng.Float64()*0.6 // (-1.4, -0.8]
		} else {
			score = 0.2 + g.rng.Float64()*0.3 // [0.2, 0.5)
		}

		records = append(records, models.ActivityRecord{
			ID:        fmt.Sprintf("REC%06d", i+1),
			Timestamp: now.Add(-time.Duration(g.rng.Float64() * window)),
			EntityID:  fmt.Sprintf("ENT_%03d", g.rng.Intn(entityPool)),
			Location:  models.Locations[g.rng.Intn(len(models.Locations))],
			Activity:  models.Activities[g.rng.Intn(len(models.Activities))],
			Score:     score,
			IsAnomaly: isAnomaly,
			Duration:  g.rng.Intn(180) + 5, // [5, 185)
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	return records, nil
}
