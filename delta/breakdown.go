package delta

import (
	"encoding/json"

	"github.com/harwatch/hardiff/capture"
)

// PhaseNames lists the six canonical timing phases, in request
// lifecycle order.
var PhaseNames = [...]string{"blocked", "dns", "connect", "send", "wait", "receive"}

// Breakdown is the canonical per-entry timing record. Every phase is
// always populated; Total is derived at construction time and the
// value is never mutated afterwards.
type Breakdown struct {
	Blocked float64 `json:"blocked"`
	DNS     float64 `json:"dns"`
	Connect float64 `json:"connect"`
	Send    float64 `json:"send"`
	Wait    float64 `json:"wait"`
	Receive float64 `json:"receive"`

	// Total is the sum of the non-negative phases. A negative phase
	// value is the HAR convention for "not applicable", so it stays
	// visible in the breakdown but contributes nothing to the total.
	Total float64 `json:"total"`
}

// Phases returns the six phase values in PhaseNames order.
func (b Breakdown) Phases() [6]float64 {
	return [6]float64{b.Blocked, b.DNS, b.Connect, b.Send, b.Wait, b.Receive}
}

// Normalize coerces one entry's raw timings into a Breakdown.
//
// Coercion rules: a phase that is missing, null or not a number
// becomes 0; numeric values pass through unchanged, integers and
// fractions alike. A timings value that is present but not a JSON
// object is treated the same as an absent one. Normalize is pure and
// never fails, whatever shape the capture held.
func Normalize(entry capture.Entry) Breakdown {
	var raw map[string]any
	if len(entry.Timings) > 0 {
		if err := json.Unmarshal(entry.Timings, &raw); err != nil {
			raw = nil
		}
	}

	var b Breakdown
	fields := [6]*float64{&b.Blocked, &b.DNS, &b.Connect, &b.Send, &b.Wait, &b.Receive}
	for i, name := range PhaseNames {
		*fields[i] = phaseValue(raw[name])
		if *fields[i] >= 0 {
			b.Total += *fields[i]
		}
	}

	return b
}

func phaseValue(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}
