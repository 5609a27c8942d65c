// Package reconcile merges curated lineage facts with freeform answer streams
package reconcile

import "sort"

// UnresolvedDeliveries diffs the multiset of freeform delivery-date answers
// (raw) against explicitly mapped delivery dates (mapped) and returns one
// entry per calving event that still lacks a calf mapping
// raw and mapped are date -> occurrence count; the diff never touches mapped
// data, it only reports what remains to be linked
func UnresolvedDeliveries(raw, mapped map[string]int) []string {
	var out []string
	for date, n := range raw {
		if n <= 0 {
			continue
		}
		left := n - mapped[date]
		for i := 0; i < left; i++ {
			out = append(out, date)
		}
	}
	sort.Strings(out)
	return out
}

// Stream is one tag-scoped answer stream keyed by batch id
type Stream map[string]string

// BreedingRow is the merged view of one breeding event
// streams missing a value for the batch contribute an empty string
type BreedingRow struct {
	BatchID      string `json:"-"`
	Date         string `json:"ai_date"`
	BullNumber   string `json:"bull_number"`
	SemenCompany string `json:"semen_company"`
	MotherYield  string `json:"mother_yield"`
}

// MergeBreeding full-outer-joins the four tag-scoped streams on batch id and
// orders the result newest first by AI date, then batch id for stability
func MergeBreeding(dates, bulls, semen, yields Stream) []BreedingRow {
	batches := make(map[string]bool)
	for _, s := range []Stream{dates, bulls, semen, yields} {
		for b := range s {
			batches[b] = true
		}
	}
	out := make([]BreedingRow, 0, len(batches))
	for b := range batches {
		out = append(out, BreedingRow{
			BatchID:      b,
			Date:         dates[b],
			BullNumber:   bulls[b],
			SemenCompany: semen[b],
			MotherYield:  yields[b],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].BatchID > out[j].BatchID
	})
	return out
}

// CandidateCalves filters classified calf numbers down to ones not already
// mapped and distinct from the mother's own number
func CandidateCalves(classified []string, mapped map[string]bool, motherNumber string) []string {
	seen := make(map[string]bool, len(classified))
	var out []string
	for _, n := range classified {
		if n == "" || n == motherNumber || mapped[n] || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
