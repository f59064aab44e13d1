package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/claude/liftnotes/internal/config"
	"github.com/claude/liftnotes/internal/export"
	"github.com/claude/liftnotes/internal/ingest"
)

// maxBodyBytes caps the size of an uploaded training log.
const maxBodyBytes = 10 << 20

// ConvertResponse is the JSON body of a successful conversion.
type ConvertResponse struct {
	Result  *ingest.Result `json:"result"`
	Records []export.Row   `json:"records"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.provider.Options().Settings())
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unsupported format %q", format)})
		return
	}

	p := s.provider
	if q.Has("skip_dates") {
		dates := splitDates(q.Get("skip_dates"))
		if err := config.ValidateSkipDates(dates); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid skip_dates: " + err.Error()})
			return
		}
		p = p.WithSkipDates(dates)
	}
	if v := q.Get("consolidate"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid consolidate value: " + v})
			return
		}
		p = p.WithConsolidation(on)
	}

	result, records, err := p.Run(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
			return
		}
		s.log.Error("convert error", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	result.RecordsWritten = int64(len(records))
	result.Message = fmt.Sprintf("processed %d workout entries", len(records))

	s.log.Info("conversion complete",
		"run_id", result.RunID,
		"request_id", requestIDFromContext(r),
		"records", len(records),
		"format", format,
	)

	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="training_history.csv"`)
		if err := export.WriteCSV(w, records); err != nil {
			s.log.Error("csv response", "error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{Result: result, Records: export.Rows(records)})
}

// splitDates parses a comma separated skip date list.
func splitDates(s string) []string {
	var dates []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			dates = append(dates, d)
		}
	}
	return dates
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
