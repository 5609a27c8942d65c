// Package db exposes the embedded herdbook DDL and a bootstrap helper
package db

import (
	"context"

	_ "embed"

	"herdbook/internal/modkit/repokit"
	perr "herdbook/internal/platform/errors"
)

// Schema contains the full Postgres DDL bundle
//
//go:embed schema.sql
var Schema string

// Migrate applies the embedded schema
// every statement is idempotent so re-running on boot is safe
func Migrate(ctx context.Context, q repokit.Queryer) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return perr.FromPostgres(err, "apply schema")
	}
	return nil
}
