package analytics

import (
	"github.com/jengzang/campus-security-backend-go/internal/models"
)

// Summarize computes the dashboard statistics and chart buckets for a
// collection of activity records. It is a pure function: the input is
// never mutated and an empty collection yields all-zero fields.
func Summarize(records []models.ActivityRecord) models.Summary {
	var s models.Summary
	s.TotalRecords = len(records)

	entities := make(map[string]struct{})
	locIndex := make(map[string]int)

	for _, r := range records {
		entities[r.EntityID] = struct{}{}

		if r.IsAnomaly {
			s.AnomalyCount++
		}
		if r.Score < CriticalThreshold {
			s.CriticalAlertCount++
		}

		// Hour-of-day and weekday buckets conflate dates across the
		// whole window on purpose: the charts show cyclical patterns,
		// not a timeline.
		s.HourlyBuckets[r.Timestamp.Hour()]++
		s.WeekdayBuckets[int(r.Timestamp.Weekday())]++

		idx, ok := locIndex[r.Location]
		if !ok {
			idx = len(s.LocationBuckets)
			locIndex[r.Location] = idx
			s.LocationBuckets = append(s.LocationBuckets, models.LocationCount{Location: r.Location})
		}
		s.LocationBuckets[idx].Count++
	}

	s.DistinctEntities = len(entities)
	s.StatusBuckets = models.StatusBuckets{
		Normal:  s.TotalRecords - s.AnomalyCount,
		Anomaly: s.AnomalyCount,
	}

	return s
}

// EntityInfo builds the per-entity drilldown from a collection, or nil if
// the entity has no records. The collection's descending-timestamp order
// means the first matching record is the most recent.
func EntityInfo(records []models.ActivityRecord, entityID string) *models.EntityInfo {
	var info *models.EntityInfo
	seen := make(map[string]struct{})

	for _, r := range records {
		if r.EntityID != entityID {
			continue
		}
		if info == nil {
			info = &models.EntityInfo{
				EntityID:     entityID,
				LastSeen:     r.Timestamp.Format(timeFormat),
				LastActivity: r.Activity,
				LastLocation: r.Location,
			}
		}
		info.RecordCount++
		if r.IsAnomaly {
			info.AnomalyCount++
		}
		if _, ok := seen[r.Location]; !ok {
			seen[r.Location] = struct{}{}
			info.Locations = append(info.Locations, r.Location)
		}
	}

	return info
}
