package models

// Status filter values
const (
	FilterAll     = "all"
	FilterNormal  = "normal"
	FilterAnomaly = "anomaly"
)

// DefaultPageSize is the page size used when the caller does not specify one
const DefaultPageSize = 10

// RecordFilter represents filter parameters for querying activity records
type RecordFilter struct {
	Search   string `form:"search"`   // Case-insensitive substring over entityId/location/activity
	Status   string `form:"status"`   // all, normal, anomaly
	Page     int    `form:"page"`     // 1-based
	PageSize int    `form:"pageSize"`
}

// Normalize fills in defaults for unset fields. Invalid values (negative
// page, unknown status) are left alone so the query engine can reject them
// with a descriptive error.
func (f *RecordFilter) Normalize() {
	if f.Status == "" {
		f.Status = FilterAll
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
}

// QueryResult represents one page of filtered records plus the pagination
// metadata a caller needs to render navigation
type QueryResult struct {
	Records      []ActivityRecord `json:"records"`
	TotalMatches int              `json:"total_matches"` // Count before pagination
	TotalPages   int              `json:"total_pages"`
	Page         int              `json:"page"`
	PageSize     int              `json:"page_size"`
}
