package models

import (
	"fmt"
	"time"
)

// ActivityRecord represents a single campus activity event (entry/exit,
// card swipe, lab access, etc.) with its anomaly score.
// Records are never mutated after creation; derived views always copy.
type ActivityRecord struct {
	ID        string    `json:"id"`        // REC + 6-digit sequence, e.g. REC000001
	Timestamp time.Time `json:"timestamp"` // Event time
	EntityID  string    `json:"entityId"`  // ENT_ + zero-padded number (person/badge/device)
	Location  string    `json:"location"`  // Building/area name
	Activity  string    `json:"activity"`  // Action type
	Score     float64   `json:"score"`     // Anomaly score; negative means anomalous
	IsAnomaly bool      `json:"isAnomaly"` // Must equal Score < 0
	Duration  int       `json:"duration"`  // Seconds
}

// Activity type constants
const (
	ActivityEntry          = "Entry"
	ActivityExit           = "Exit"
	ActivityCardSwipe      = "Card Swipe"
	ActivityWiFiLogin      = "WiFi Login"
	ActivityLabAccess      = "Lab Access"
	ActivityLibraryCheckin = "Library Check-in"
)

// Status string constants
const (
	StatusNormal  = "Normal"
	StatusAnomaly = "Anomaly"
)

// Activities lists the fixed set of action types
var Activities = []string{
	ActivityEntry,
	ActivityExit,
	ActivityCardSwipe,
	ActivityWiFiLogin,
	ActivityLabAccess,
	ActivityLibraryCheckin,
}

// Locations lists the campus building/area names
var Locations = []string{
	"Main Building",
	"Library",
	"Lab A",
	"Lab B",
	"Cafeteria",
	"Gym",
	"Dorm A",
	"Dorm B",
}

// Status returns the display status derived from the anomaly flag.
// It never re-derives from the score.
func (r *ActivityRecord) Status() string {
	if r.IsAnomaly {
		return StatusAnomaly
	}
	return StatusNormal
}

// Validate checks the record against the ingestion contract.
// The anomaly flag disagreeing with the score sign is a fatal
// input-contract violation, not something to silently normalize.
func (r *ActivityRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record has empty id")
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("record %s has zero timestamp", r.ID)
	}
	if r.IsAnomaly != (r.Score < 0) {
		return fmt.Errorf("record %s: isAnomaly=%t disagrees with score %.2f", r.ID, r.IsAnomaly, r.Score)
	}
	if r.Duration < 0 {
		return fmt.Errorf("record %s has negative duration %d", r.ID, r.Duration)
	}
	return nil
}
