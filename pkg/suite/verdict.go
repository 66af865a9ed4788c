package suite

import "github.com/aeonsage/colabcheck/pkg/check"

// Verdict is the overall judgment of the environment, derived from the
// critical checks alone. Non-critical failures never push the verdict
// below Ready.
type Verdict int

const (
	NotConfigured Verdict = iota
	Partial
	Ready
)

func (v Verdict) String() string {
	switch v {
	case Ready:
		return "READY"
	case Partial:
		return "PARTIAL"
	default:
		return "NOT_CONFIGURED"
	}
}

// computeVerdict counts the satisfied critical checks. A critical check
// that never ran (its group returned early) counts as unsatisfied, the
// same as a recorded failure.
func computeVerdict(results []check.Result) Verdict {
	recorded := make(map[check.ID]bool, len(results))
	for _, res := range results {
		recorded[res.ID] = res.OK()
	}

	satisfied := 0
	for _, id := range check.CriticalIDs() {
		if recorded[id] {
			satisfied++
		}
	}

	switch {
	case satisfied == len(check.CriticalIDs()):
		return Ready
	case satisfied > 0:
		return Partial
	default:
		return NotConfigured
	}
}
