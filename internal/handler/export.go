// export.go implements GET /api/trips/export.
// Returns every saved trip as a flat table, one row per trip, for
// spreadsheet-style use. Supports ?format=csv; default is JSON.
package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/voyago/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "name", "status", "source", "origin", "destination",
	"start_date", "end_date", "travelers", "budget_total",
}

// exportRow is the flat JSON form of one exported trip.
type exportRow struct {
	TripID      string  `json:"trip_id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Source      string  `json:"source"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Travelers   int     `json:"travelers"`
	BudgetTotal float64 `json:"budget_total"`
}

// ExportTrips handles GET /api/trips/export.
func (s *Server) ExportTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	rows := make([]exportRow, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, tripToExportRow(t))
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func tripToExportRow(t domain.TripRecord) exportRow {
	row := exportRow{
		TripID:      t.ID.String(),
		Name:        t.Name,
		Status:      string(t.Status),
		Source:      string(t.Source),
		Origin:      t.Origin,
		Destination: t.Destination,
		Travelers:   t.Travelers,
		BudgetTotal: t.Budget.Total,
	}
	if !t.StartDate.IsZero() {
		row.StartDate = t.StartDate.Format(domain.DateFormat)
	}
	if !t.EndDate.IsZero() {
		row.EndDate = t.EndDate.Format(domain.DateFormat)
	}
	return row
}

// writeCSV streams the rows as text/csv with a header line.
func writeCSV(w http.ResponseWriter, rows []exportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeaders)
	for _, r := range rows {
		_ = cw.Write([]string{
			r.TripID,
			r.Name,
			r.Status,
			r.Source,
			r.Origin,
			r.Destination,
			r.StartDate,
			r.EndDate,
			strconv.Itoa(r.Travelers),
			strconv.FormatFloat(r.BudgetTotal, 'f', -1, 64),
		})
	}
	cw.Flush()
}
