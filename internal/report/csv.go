// Package report renders the analysis results into the run's output
// artifacts: enriched CSV, area summary CSV, detailed text report, console
// listings, and KML/GeoJSON map overlays.
package report

import (
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/rrcbeta/scenicloop/internal/clients/mountainproject"
	"github.com/rrcbeta/scenicloop/internal/services"
)

// WriteEnrichedCSV writes the per-route table with the derived
// Path_Position, Distance_to_Road, and Scenic_Loop_Order columns.
func WriteEnrichedCSV(w io.Writer, routes []mountainproject.Route) error {
	data, err := csvutil.Marshal(routes)
	if err != nil {
		return fmt.Errorf("failed to encode routes CSV: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write routes CSV: %w", err)
	}
	return nil
}

// WriteAreaSummaryCSV writes the scored per-area summary table.
func WriteAreaSummaryCSV(w io.Writer, summaries []services.AreaSummary) error {
	data, err := csvutil.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to encode area summary CSV: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write area summary CSV: %w", err)
	}
	return nil
}
