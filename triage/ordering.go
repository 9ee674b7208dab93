package triage

import (
	"cmp"
	"slices"
	"strings"
)

// Ordering compares two patients cmp-style: negative when a sorts first.
type Ordering func(a, b *Patient) int

// BySeverity puts the higher urgency first.
func BySeverity(a, b *Patient) int { return cmp.Compare(b.Urgency, a.Urgency) }

// ByArrival puts the earlier arrival first.
func ByArrival(a, b *Patient) int { return a.ArrivalTime.Compare(b.ArrivalTime) }

// ByID orders lexicographically by patient ID.
func ByID(a, b *Patient) int { return strings.Compare(a.ID, b.ID) }

// Then chains orderings; later ones only break ties left by earlier ones.
func Then(orderings ...Ordering) Ordering {
	return func(a, b *Patient) int {
		for _, o := range orderings {
			if c := o(a, b); c != 0 {
				return c
			}
		}

		return 0
	}
}

// QueueOrder is the ordering a Queue serves in: urgency, then arrival, then ID.
var QueueOrder = Then(BySeverity, ByArrival, ByID)

// SortPatients sorts ps in place, stably, by the given ordering.
func SortPatients(ps []*Patient, by Ordering) {
	slices.SortStableFunc(ps, by)
}
