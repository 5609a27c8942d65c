// Package repo provides postgres access for mother-calf mappings and the
// tag-scoped answer streams lineage reconciliation reads
package repo

import (
	"context"

	"herdbook/internal/core/reconcile"
	"herdbook/internal/modkit/repokit"
	perr "herdbook/internal/platform/errors"
)

// Mapping is one curated mother->calf link
type Mapping struct {
	Owner        string
	SpeciesID    int64
	DeliveryDate string
	MotherNumber string
	CalfNumber   string
}

// Repo is the lineage persistence surface used by the service layer
type Repo interface {
	ClassifiedNumbers(ctx context.Context, owner string, speciesID int64, logicValue string) ([]string, error)
	MappedCalves(ctx context.Context, owner string, speciesID int64, motherNumber string) (map[string]bool, error)
	RawDeliveryCounts(
		ctx context.Context, owner string, speciesID int64, motherNumber, tag string,
	) (map[string]int, error)
	MappedDeliveryCounts(
		ctx context.Context, owner string, speciesID int64, motherNumber string,
	) (map[string]int, error)
	InsertMapping(ctx context.Context, m Mapping) error
	TagStream(
		ctx context.Context, owner string, speciesID int64, animalNumber, tag string,
	) (reconcile.Stream, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// ClassifiedNumbers lists distinct animal numbers whose active answers carry
// the given classification tag
func (r *queries) ClassifiedNumbers(
	ctx context.Context, owner string, speciesID int64, logicValue string,
) ([]string, error) {
	const sql = `
		select distinct animal_number
		from answer_instances
		where user_id = $1 and animal_id = $2
		  and logic_value = $3 and not excluded
		order by animal_number
	`
	rows, err := r.q.Query(ctx, sql, owner, speciesID, logicValue)
	if err != nil {
		return nil, perr.FromPostgres(err, "classified numbers")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, perr.FromPostgres(err, "classified numbers scan")
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *queries) MappedCalves(
	ctx context.Context, owner string, speciesID int64, motherNumber string,
) (map[string]bool, error) {
	const sql = `
		select calf_number
		from mother_calf_mappings
		where user_id = $1 and animal_id = $2 and mother_number = $3
	`
	rows, err := r.q.Query(ctx, sql, owner, speciesID, motherNumber)
	if err != nil {
		return nil, perr.FromPostgres(err, "mapped calves")
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, perr.FromPostgres(err, "mapped calves scan")
		}
		out[n] = true
	}
	return out, rows.Err()
}

// RawDeliveryCounts tallies the mother's freeform delivery-date answers
func (r *queries) RawDeliveryCounts(
	ctx context.Context, owner string, speciesID int64, motherNumber, tag string,
) (map[string]int, error) {
	const sql = `
		select a.answer, count(*)
		from answer_instances a
		join questions q on q.id = a.question_id
		join question_tags t on t.id = q.question_tag_id
		where a.user_id = $1 and a.animal_id = $2 and a.animal_number = $3
		  and t.name = $4 and a.answer <> ''
		  and not a.excluded
		group by a.answer
	`
	return r.scanCounts(ctx, sql, owner, speciesID, motherNumber, tag)
}

func (r *queries) MappedDeliveryCounts(
	ctx context.Context, owner string, speciesID int64, motherNumber string,
) (map[string]int, error) {
	const sql = `
		select delivery_date::text, count(*)
		from mother_calf_mappings
		where user_id = $1 and animal_id = $2 and mother_number = $3
		group by delivery_date
	`
	return r.scanCounts(ctx, sql, owner, speciesID, motherNumber)
}

func (r *queries) scanCounts(ctx context.Context, sql string, args ...any) (map[string]int, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "delivery counts")
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var date string
		var n int
		if err := rows.Scan(&date, &n); err != nil {
			return nil, perr.FromPostgres(err, "delivery counts scan")
		}
		out[date] = n
	}
	return out, rows.Err()
}

// InsertMapping relies on the table's unique constraint; a duplicate link
// surfaces as a duplicate-key error for the service to absorb
func (r *queries) InsertMapping(ctx context.Context, m Mapping) error {
	const sql = `
		insert into mother_calf_mappings
			(user_id, animal_id, delivery_date, mother_number, calf_number)
		values ($1, $2, $3::date, $4, $5)
	`
	if _, err := r.q.Exec(ctx, sql,
		m.Owner, m.SpeciesID, m.DeliveryDate, m.MotherNumber, m.CalfNumber,
	); err != nil {
		return perr.FromPostgres(err, "insert mapping")
	}
	return nil
}

// TagStream returns batch_id -> answer for one tag-scoped stream
// later batches win if a batch somehow carries the tag twice
func (r *queries) TagStream(
	ctx context.Context, owner string, speciesID int64, animalNumber, tag string,
) (reconcile.Stream, error) {
	const sql = `
		select a.batch_id::text, a.answer
		from answer_instances a
		join questions q on q.id = a.question_id
		join question_tags t on t.id = q.question_tag_id
		where a.user_id = $1 and a.animal_id = $2 and a.animal_number = $3
		  and t.name = $4 and not a.excluded
		order by a.created_at
	`
	rows, err := r.q.Query(ctx, sql, owner, speciesID, animalNumber, tag)
	if err != nil {
		return nil, perr.FromPostgres(err, "tag stream")
	}
	defer rows.Close()

	out := make(reconcile.Stream)
	for rows.Next() {
		var batch, answer string
		if err := rows.Scan(&batch, &answer); err != nil {
			return nil, perr.FromPostgres(err, "tag stream scan")
		}
		out[batch] = answer
	}
	return out, rows.Err()
}
