package domain

import (
	"sort"

	m "github.com/mouse-blink/sortviz/internal/model"
)

// validationColor is the transient highlight applied to bars as they
// are confirmed sorted.
const validationColor = "#2ECC71"

// Validator confirms a replayed frame against an independent
// reference sort of the original input and drives the confirmation
// animation over the verified prefix.
//
// The reference comes from the standard library sort so the oracle
// shares no code with the algorithms being visualized.
type Validator struct {
	reference []int
	frame     m.Frame
	queue     []m.Validation
	last      *m.Validation
}

// NewValidator creates a Validator for an input array. The input is
// copied and reference-sorted up front, before any replay can touch it.
func NewValidator(input []int) *Validator {
	reference := append([]int(nil), input...)
	sort.Ints(reference)

	return &Validator{reference: reference}
}

// Verify returns one Validation per frame index, from index 0 up to
// but not including the first value that disagrees with the reference
// sort. A fully correct replay yields a record for every index.
func (v *Validator) Verify(frame m.Frame) []m.Validation {
	records := make([]m.Validation, 0, len(frame))

	for i, bar := range frame {
		if i >= len(v.reference) || bar.Value != v.reference[i] {
			break
		}

		records = append(records, m.Validation{Index: i, Color: bar.Color})
	}

	return records
}

// Begin computes the verified prefix of frame and arms the
// confirmation animation over it.
func (v *Validator) Begin(frame m.Frame) {
	v.frame = frame
	v.queue = v.Verify(frame)
	v.last = nil
}

// Tick advances the confirmation animation one step: the previously
// highlighted bar gets its saved color back, then the next record is
// popped and highlighted. It returns false once every record has been
// highlighted and restored.
func (v *Validator) Tick() bool {
	if v.last != nil {
		v.frame[v.last.Index].Color = v.last.Color
		v.last = nil
	}

	if len(v.queue) == 0 {
		return false
	}

	record := v.queue[0]
	v.queue = v.queue[1:]
	v.frame[record.Index].Color = validationColor
	v.last = &record

	return true
}

// Remaining returns how many records are still queued for highlight.
func (v *Validator) Remaining() int {
	return len(v.queue)
}
