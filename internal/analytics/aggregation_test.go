package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/campus-security-backend-go/internal/models"
)

// rec builds a minimal valid record for engine tests
func rec(id string, ts time.Time, entity, location, activity string, score float64, duration int) models.ActivityRecord {
	return models.ActivityRecord{
		ID:        id,
		Timestamp: ts,
		EntityID:  entity,
		Location:  location,
		Activity:  activity,
		Score:     score,
		IsAnomaly: score < 0,
		Duration:  duration,
	}
}

func TestSummarizeEmptyCollection(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalRecords)
	assert.Equal(t, 0, s.DistinctEntities)
	assert.Equal(t, 0, s.AnomalyCount)
	assert.Equal(t, 0, s.CriticalAlertCount)
	assert.Equal(t, [24]int{}, s.HourlyBuckets)
	assert.Equal(t, [7]int{}, s.WeekdayBuckets)
	assert.Empty(t, s.LocationBuckets)
	assert.Equal(t, models.StatusBuckets{}, s.StatusBuckets)
}

func TestSummarizeCounts(t *testing.T) {
	base := time.Date(2025, 3, 2, 10, 0, 0, 0, time.Local) // A Sunday

	records := []models.ActivityRecord{
		rec("REC000001", base.Add(3*time.Hour), "ENT_001", "Library", "Entry", -1.2, 30),   // Critical anomaly
		rec("REC000002", base.Add(2*time.Hour), "ENT_002", "Lab A", "Exit", -0.9, 40),      // Anomaly
		rec("REC000003", base.Add(time.Hour), "ENT_001", "Library", "Card Swipe", 0.3, 50), // Normal, repeat entity
		rec("REC000004", base, "ENT_003", "Gym", "Entry", 0.4, 60),
	}

	s := Summarize(records)

	assert.Equal(t, 4, s.TotalRecords)
	assert.Equal(t, 3, s.DistinctEntities)
	assert.Equal(t, 2, s.AnomalyCount)
	assert.Equal(t, 1, s.CriticalAlertCount)

	// anomalyCount + normalCount == totalRecords
	assert.Equal(t, s.TotalRecords, s.StatusBuckets.Normal+s.StatusBuckets.Anomaly)
	assert.Equal(t, 2, s.StatusBuckets.Normal)
	assert.Equal(t, 2, s.StatusBuckets.Anomaly)

	// criticalAlertCount <= anomalyCount
	assert.LessOrEqual(t, s.CriticalAlertCount, s.AnomalyCount)
}

func TestSummarizeHourAndWeekdayBuckets(t *testing.T) {
	// Two different days, same hour of day: the hourly bucket conflates them
	day1 := time.Date(2025, 3, 2, 13, 15, 0, 0, time.Local) // Sunday
	day2 := time.Date(2025, 3, 3, 13, 45, 0, 0, time.Local) // Monday

	records := []models.ActivityRecord{
		rec("REC000001", day2, "ENT_001", "Library", "Entry", 0.3, 10),
		rec("REC000002", day1, "ENT_002", "Library", "Entry", 0.3, 10),
	}

	s := Summarize(records)

	assert.Equal(t, 2, s.HourlyBuckets[13])
	assert.Equal(t, 1, s.WeekdayBuckets[0], "Sunday bucket")
	assert.Equal(t, 1, s.WeekdayBuckets[1], "Monday bucket")

	total := 0
	for _, n := range s.HourlyBuckets {
		total += n
	}
	assert.Equal(t, s.TotalRecords, total)
}

func TestSummarizeLocationBucketsFirstSeenOrder(t *testing.T) {
	ts := time.Now()
	records := []models.ActivityRecord{
		rec("REC000001", ts, "ENT_001", "Gym", "Entry", 0.3, 10),
		rec("REC000002", ts, "ENT_001", "Library", "Entry", 0.3, 10),
		rec("REC000003", ts, "ENT_001", "Gym", "Exit", 0.3, 10),
	}

	s := Summarize(records)

	require.Len(t, s.LocationBuckets, 2)
	assert.Equal(t, models.LocationCount{Location: "Gym", Count: 2}, s.LocationBuckets[0])
	assert.Equal(t, models.LocationCount{Location: "Library", Count: 1}, s.LocationBuckets[1])
}

func TestEntityInfo(t *testing.T) {
	base := time.Date(2025, 3, 2, 10, 0, 0, 0, time.Local)

	// Descending order, as the store guarantees
	records := []models.ActivityRecord{
		rec("REC000001", base.Add(2*time.Hour), "ENT_007", "Lab A", "Lab Access", -0.9, 30),
		rec("REC000002", base.Add(time.Hour), "ENT_001", "Library", "Entry", 0.3, 30),
		rec("REC000003", base, "ENT_007", "Gym", "Entry", 0.4, 30),
	}

	info := EntityInfo(records, "ENT_007")
	require.NotNil(t, info)

	assert.Equal(t, "ENT_007", info.EntityID)
	assert.Equal(t, 2, info.RecordCount)
	assert.Equal(t, 1, info.AnomalyCount)
	assert.Equal(t, []string{"Lab A", "Gym"}, info.Locations)
	assert.Equal(t, "Lab Access", info.LastActivity)
	assert.Equal(t, "Lab A", info.LastLocation)
	assert.Equal(t, base.Add(2*time.Hour).Format(time.RFC3339), info.LastSeen)

	assert.Nil(t, EntityInfo(records, "ENT_999"))
}

func TestSummarizeManyRecordsIdentity(t *testing.T) {
	ts := time.Now()
	var records []models.ActivityRecord
	for i := 0; i < 150; i++ {
		score := 0.3
		if i%5 == 0 {
			score = -1.1
		}
		records = append(records, rec(
			fmt.Sprintf("REC%06d", i+1), ts.Add(-time.Duration(i)*time.Minute),
			fmt.Sprintf("ENT_%03d", i%30), "Library", "Entry", score, 20,
		))
	}

	s := Summarize(records)

	assert.Equal(t, 150, s.TotalRecords)
	assert.Equal(t, 30, s.DistinctEntities)
	assert.Equal(t, 30, s.AnomalyCount)
	assert.Equal(t, s.TotalRecords, s.StatusBuckets.Normal+s.StatusBuckets.Anomaly)
	assert.LessOrEqual(t, s.CriticalAlertCount, s.AnomalyCount)
}
