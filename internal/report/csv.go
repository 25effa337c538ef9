package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Row is one profile's outcome against one problem instance.
type Row struct {
	ProblemName string
	ProfileName string
	Feasible    bool
	Cost        float64
	ActiveHosts int
	Migrations  int
	LowerBound  float64 // from internal/ilp, NaN if not computed
	ElapsedSecs float64
}

var csvHeader = []string{
	"problem", "profile", "feasible", "cost", "active_hosts", "migrations", "lower_bound", "elapsed_secs",
}

// WriteCSV writes rows to w as a header followed by one line per row, in
// the order given.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.ProblemName,
			r.ProfileName,
			strconv.FormatBool(r.Feasible),
			strconv.FormatFloat(r.Cost, 'f', -1, 64),
			strconv.Itoa(r.ActiveHosts),
			strconv.Itoa(r.Migrations),
			strconv.FormatFloat(r.LowerBound, 'f', -1, 64),
			strconv.FormatFloat(r.ElapsedSecs, 'f', 6, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: write row %q/%q: %w", r.ProblemName, r.ProfileName, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
