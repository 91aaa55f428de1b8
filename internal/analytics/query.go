package analytics

import (
	"fmt"
	"strings"

	"github.com/jengzang/campus-security-backend-go/internal/models"
)

// Query applies the status filter and free-text search to a collection,
// then paginates the result. It holds no state: re-running with the same
// arguments on an unchanged collection yields identical output.
//
// A page beyond the last one is clamped to the last page rather than
// treated as an error.
func Query(records []models.ActivityRecord, filter models.RecordFilter) (models.QueryResult, error) {
	if filter.Page < 1 {
		return models.QueryResult{}, fmt.Errorf("page must be >= 1, got %d", filter.Page)
	}
	if filter.PageSize < 1 {
		return models.QueryResult{}, fmt.Errorf("pageSize must be >= 1, got %d", filter.PageSize)
	}
	switch filter.Status {
	case models.FilterAll, models.FilterNormal, models.FilterAnomaly:
	default:
		return models.QueryResult{}, fmt.Errorf("status must be one of all/normal/anomaly, got %q", filter.Status)
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))

	matched := make([]models.ActivityRecord, 0, len(records))
	for _, r := range records {
		if filter.Status == models.FilterNormal && r.IsAnomaly {
			continue
		}
		if filter.Status == models.FilterAnomaly && !r.IsAnomaly {
			continue
		}
		if term != "" && !matchesTerm(&r, term) {
			continue
		}
		matched = append(matched, r)
	}

	totalMatches := len(matched)
	totalPages := (totalMatches + filter.PageSize - 1) / filter.PageSize

	page := filter.Page
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * filter.PageSize
	end := start + filter.PageSize
	if start > totalMatches {
		start = totalMatches
	}
	if end > totalMatches {
		end = totalMatches
	}

	return models.QueryResult{
		Records:      matched[start:end],
		TotalMatches: totalMatches,
		TotalPages:   totalPages,
		Page:         page,
		PageSize:     filter.PageSize,
	}, nil
}

// matchesTerm reports whether the lowercased term is a substring of the
// record's entity ID, location or activity
func matchesTerm(r *models.ActivityRecord, term string) bool {
	return strings.Contains(strings.ToLower(r.EntityID), term) ||
		strings.Contains(strings.ToLower(r.Location), term) ||
		strings.Contains(strings.ToLower(r.Activity), term)
}
