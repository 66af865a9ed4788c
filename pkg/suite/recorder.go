package suite

import (
	"log/slog"

	"github.com/aeonsage/colabcheck/pkg/check"
)

// Recorder collects results in run order and forwards each one to the
// sink the moment it arrives, so progress shows live. It is used from
// a single goroutine.
type Recorder struct {
	sink    Sink
	results []check.Result
	passed  int
	failed  int
}

// NewRecorder returns a Recorder forwarding to sink. A nil sink is
// fine; results are then only collected.
func NewRecorder(sink Sink) *Recorder {
	return &Recorder{sink: sink}
}

// Record implements check.Recorder.
func (r *Recorder) Record(res check.Result) {
	r.results = append(r.results, res)
	if res.OK() {
		r.passed++
	} else {
		r.failed++
		if res.Err != nil {
			slog.Debug("check failed", "id", res.ID, "err", res.Err)
		}
	}
	if r.sink != nil {
		r.sink.ResultRecorded(res)
	}
}

func (r *Recorder) summary() Summary {
	return Summary{
		Results: r.results,
		Passed:  r.passed,
		Failed:  r.failed,
		Verdict: computeVerdict(r.results),
	}
}
