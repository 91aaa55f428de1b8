package models

// Severity tier constants
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
)

// Alert is an anomalous record decorated with its severity tier and a
// 1-based display rank
type Alert struct {
	ActivityRecord
	Severity    string `json:"severity"`
	AlertNumber int    `json:"alert_number"`
}

// AlertFeed is the ranked alert list. HasAlerts distinguishes the
// "no active alerts" state explicitly instead of leaving callers to
// interpret an empty slice.
type AlertFeed struct {
	HasAlerts bool    `json:"has_alerts"`
	Alerts    []Alert `json:"alerts"`
}
