package models

// StatusBuckets holds the normal/anomaly split of a collection.
// Normal + Anomaly always equals the total record count.
type StatusBuckets struct {
	Normal  int `json:"normal"`
	Anomaly int `json:"anomaly"`
}

// LocationCount is one location bucket. Buckets are kept as an ordered
// slice (first-seen order) rather than a map, since ordering is part of
// the contract and Go maps do not preserve insertion order.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// Summary represents aggregated dashboard statistics over a collection
type Summary struct {
	TotalRecords       int `json:"total_records"`
	DistinctEntities   int `json:"distinct_entities"`
	AnomalyCount       int `json:"anomaly_count"`
	CriticalAlertCount int `json:"critical_alert_count"` // score < -1.0, a strict subset of anomalies

	// Chart buckets
	HourlyBuckets   [24]int         `json:"hourly_buckets"`   // Index = hour of day, all days conflated
	StatusBuckets   StatusBuckets   `json:"status_buckets"`
	LocationBuckets []LocationCount `json:"location_buckets"` // First-seen order
	WeekdayBuckets  [7]int          `json:"weekday_buckets"`  // 0=Sunday .. 6=Saturday
}

// EntityInfo represents the per-entity drilldown view
type EntityInfo struct {
	EntityID     string   `json:"entity_id"`
	RecordCount  int      `json:"record_count"`
	AnomalyCount int      `json:"anomaly_count"`
	Locations    []string `json:"locations"`     // First-seen order
	LastSeen     string   `json:"last_seen"`     // RFC3339
	LastActivity string   `json:"last_activity"`
	LastLocation string   `json:"last_location"`
}
