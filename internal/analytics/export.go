package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jengzang/campus-security-backend-go/internal/models"
)

// timeFormat is RFC3339 everywhere a timestamp is rendered as text;
// locale-dependent formats are not portable across environments
const timeFormat = time.RFC3339

// csvHeader is the fixed export column order
var csvHeader = []string{"ID", "Timestamp", "Entity ID", "Location", "Activity", "Score", "Status", "Duration"}

// WriteCSV serializes a collection to CSV. The caller passes the full
// unfiltered collection: exports always cover the whole dataset, not the
// currently displayed page. encoding/csv quotes fields containing
// delimiters or quotes per RFC 4180.
func WriteCSV(w io.Writer, records []models.ActivityRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range records {
		r := &records[i]
		row := []string{
			r.ID,
			r.Timestamp.Format(timeFormat),
			r.EntityID,
			r.Location,
			r.Activity,
			strconv.FormatFloat(r.Score, 'f', 2, 64),
			r.Status(),
			strconv.Itoa(r.Duration),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFilename builds the download filename for an export generated at
// the given time, e.g. campus_security_data_2025-01-31.csv
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("campus_security_data_%s.csv", t.Format("2006-01-02"))
}
