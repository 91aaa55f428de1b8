package service

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jengzang/campus-security-backend-go/internal/analytics"
	"github.com/jengzang/campus-security-backend-go/internal/generator"
	"github.com/jengzang/campus-security-backend-go/internal/models"
	"github.com/jengzang/campus-security-backend-go/internal/store"
)

// Sentinel errors for the handler layer to map onto HTTP statuses
var (
	ErrNoData         = errors.New("no data available")
	ErrEntityNotFound = errors.New("entity not found")
)

// RecordService handles business logic for the activity record
// collection: loading data, querying, aggregating and exporting
type RecordService struct {
	store *store.Store
	gen   *generator.Generator
}

// NewRecordService creates a new record service
func NewRecordService(st *store.Store, gen *generator.Generator) *RecordService {
	return &RecordService{
		store: st,
		gen:   gen,
	}
}

// LoadSample generates a synthetic dataset and publishes it as the
// current collection. A zero count uses the default dataset size.
func (s *RecordService) LoadSample(count int) (int, error) {
	if count == 0 {
		count = generator.DefaultCount
	}

	records, err := s.gen.Generate(count)
	if err != nil {
		return 0, err
	}

	s.store.Replace(records)
	return len(records), nil
}

// Ingest validates an externally supplied batch and publishes it as the
// current collection. Any contract violation rejects the whole batch:
// nothing is partially loaded.
func (s *RecordService) Ingest(records []models.ActivityRecord) (int, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("record batch is empty")
	}

	seen := make(map[string]struct{}, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return 0, fmt.Errorf("invalid record at index %d: %w", i, err)
		}
		if _, dup := seen[records[i].ID]; dup {
			return 0, fmt.Errorf("duplicate record id %s", records[i].ID)
		}
		seen[records[i].ID] = struct{}{}
	}

	// Downstream consumers assume descending-timestamp order
	sorted := make([]models.ActivityRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	s.store.Replace(sorted)
	return len(sorted), nil
}

// Query runs the search/filter/pagination engine over the current
// collection
func (s *RecordService) Query(filter models.RecordFilter) (models.QueryResult, error) {
	filter.Normalize()
	return analytics.Query(s.store.Snapshot(), filter)
}

// Summary computes the dashboard statistics for the current collection
func (s *RecordService) Summary() models.Summary {
	return analytics.Summarize(s.store.Snapshot())
}

// Alerts builds the ranked alert feed for the current collection
func (s *RecordService) Alerts(limit int) models.AlertFeed {
	return analytics.ClassifyAlerts(s.store.Snapshot(), limit)
}

// ExportCSV writes the full current collection as CSV and returns the
// number of exported records. Exporting an empty collection is ErrNoData.
func (s *RecordService) ExportCSV(w io.Writer) (int, error) {
	records := s.store.Snapshot()
	if len(records) == 0 {
		return 0, ErrNoData
	}
	if err := analytics.WriteCSV(w, records); err != nil {
		return 0, fmt.Errorf("failed to export records: %w", err)
	}
	return len(records), nil
}

// EntityInfo builds the drilldown view for one entity
func (s *RecordService) EntityInfo(entityID string) (*models.EntityInfo, error) {
	if entityID == "" {
		return nil, fmt.Errorf("entity id is required")
	}

	records := s.store.Snapshot()
	if len(records) == 0 {
		return nil, ErrNoData
	}

	info := analytics.EntityInfo(records, entityID)
	if info == nil {
		return nil, ErrEntityNotFound
	}
	return info, nil
}
