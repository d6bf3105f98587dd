// Package output serializes inspection results to JSON.
package output

import (
	"encoding/json"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

// ToJSON marshals any value, optionally pretty-printed.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ReportToJSON marshals a full inspection report.
func ReportToJSON(report *models.InspectionReport, pretty bool) ([]byte, error) {
	return ToJSON(report, pretty)
}

// SheetReportToJSON marshals a single sheet's report.
func SheetReportToJSON(report *models.SheetReport, pretty bool) ([]byte, error) {
	return ToJSON(report, pretty)
}
