// Package domain defines the types and contracts for lineage reconciliation
package domain

import "herdbook/internal/core/reconcile"

// Map outcomes; a duplicate mapping is a stable outcome, not an error
const (
	OutcomeCreated       = "created"
	OutcomeAlreadyMapped = "already_mapped"
)

// MapResult reports what a mapping call did
type MapResult struct {
	Outcome string `json:"outcome"`
}

// BreedingRow is the merged view of one breeding event
type BreedingRow = reconcile.BreedingRow
