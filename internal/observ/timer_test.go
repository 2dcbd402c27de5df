package observ

import (
	"testing"
	"time"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(1500 * time.Microsecond)

	parse := tm.Begin("parse")
	tm.End(parse, "2 types")
	emit := tm.Begin("emit")
	tm.End(emit, "")
	tm.End(42, "ignored")

	want := "timings:\n" +
		"  parse                   1.50 ms  // 2 types\n" +
		"  emit                    1.50 ms\n" +
		"  total                   3.00 ms\n"
	if got := tm.Summary(); got != want {
		t.Fatalf("Summary() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTimerReportEmpty(t *testing.T) {
	r := NewTimer().Report()
	if r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("unexpected report: %+v", r)
	}
}
