package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/campus-security-backend-go/internal/models"
)

func sample(id string) models.ActivityRecord {
	return models.ActivityRecord{
		ID:        id,
		Timestamp: time.Now(),
		EntityID:  "ENT_001",
		Location:  "Library",
		Activity:  "Entry",
		Score:     0.3,
		Duration:  10,
	}
}

func TestStoreStartsEmpty(t *testing.T) {
	s := New()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Snapshot())
}

func TestReplaceIsFullReplacement(t *testing.T) {
	s := New()

	s.Replace([]models.ActivityRecord{sample("REC000001"), sample("REC000002")})
	assert.Equal(t, 2, s.Len())

	s.Replace([]models.ActivityRecord{sample("REC000009")})
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "REC000009", s.Snapshot()[0].ID)
}

func TestSnapshotIsIsolatedFromLaterReplace(t *testing.T) {
	s := New()
	s.Replace([]models.ActivityRecord{sample("REC000001")})

	snap := s.Snapshot()
	s.Replace([]models.ActivityRecord{sample("REC000002")})

	// The earlier reader still sees its consistent view
	require.Len(t, snap, 1)
	assert.Equal(t, "REC000001", snap[0].ID)
}

func TestReplaceCopiesCallerSlice(t *testing.T) {
	s := New()
	input := []models.ActivityRecord{sample("REC000001")}
	s.Replace(input)

	input[0].ID = "MUTATED"
	assert.Equal(t, "REC000001", s.Snapshot()[0].ID)
}
