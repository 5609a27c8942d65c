// Package domain defines the types and contracts for answer versioning
package domain

import (
	"time"

	"herdbook/internal/core/snapshot"
)

// Grouped is the nested snapshot view returned by the resolver
type Grouped = snapshot.Grouped

// GestationFact is one derived ledger row, written once per registration
type GestationFact struct {
	AnimalNumber string    `json:"animal_number"`
	RecordDate   string    `json:"record_date"`
	Pregnancy    string    `json:"pregnancy_status"`
	Lactating    string    `json:"lactating_status"`
	BatchID      string    `json:"batch_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// PreviousCycles maps a normalized localized category label to its heat dates
// ordered newest first
type PreviousCycles = map[string][]string
