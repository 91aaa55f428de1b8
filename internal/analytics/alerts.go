package analytics

import (
	"github.com/jengzang/campus-security-backend-go/internal/models"
)

// Severity thresholds. Evaluated in order, first match wins, so a score
// of exactly -1.0 is HIGH and exactly -0.7 is MEDIUM.
const (
	CriticalThreshold = -1.0
	HighThreshold     = -0.7
)

// DefaultAlertLimit caps the alert feed when the caller does not specify
// a limit
const DefaultAlertLimit = 10

// SeverityFor maps an anomaly score to its severity tier
func SeverityFor(score float64) string {
	switch {
	case score < CriticalThreshold:
		return models.SeverityCritical
	case score < HighThreshold:
		return models.SeverityHigh
	default:
		return models.SeverityMedium
	}
}

// ClassifyAlerts filters the collection to anomalous records, preserving
// the input's relative order, truncates to limit and assigns each alert
// its severity tier and 1-based display rank.
func ClassifyAlerts(records []models.ActivityRecord, limit int) models.AlertFeed {
	if limit <= 0 {
		limit = DefaultAlertLimit
	}

	var feed models.AlertFeed
	for _, r := range records {
		if !r.IsAnomaly {
			continue
		}
		feed.Alerts = append(feed.Alerts, models.Alert{
			ActivityRecord: r,
			Severity:       SeverityFor(r.Score),
			AlertNumber:    len(feed.Alerts) + 1,
		})
		if len(feed.Alerts) == limit {
			break
		}
	}

	feed.HasAlerts = len(feed.Alerts) > 0
	return feed
}
