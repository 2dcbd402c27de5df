package driver

import (
	"encoding/json"
	"io"

	"adtc/internal/observ"
)

// TimingPayload is the JSON form of a run's phase timings.
type TimingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

func NewTimingPayload(kind, path string, timer *observ.Timer) TimingPayload {
	if kind == "" {
		kind = "pipeline"
	}
	report := timer.Report()
	return TimingPayload{
		Kind:    kind,
		Path:    path,
		TotalMS: report.TotalMS,
		Phases:  report.Phases,
	}
}

// WriteTimings renders timer as a table, or as one JSON object.
func WriteTimings(w io.Writer, kind, path string, timer *observ.Timer, asJSON bool) error {
	if !asJSON {
		_, err := io.WriteString(w, timer.Summary())
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewTimingPayload(kind, path, timer))
}
