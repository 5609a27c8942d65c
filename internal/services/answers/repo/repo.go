// Package repo provides postgres access for answer instances and the
// gestation ledger
package repo

import (
	"context"
	"time"

	"herdbook/internal/core/snapshot"
	"herdbook/internal/modkit/repokit"
	perr "herdbook/internal/platform/errors"
	"herdbook/internal/services/answers/domain"
)

// Entry sources stamped on answer rows
const (
	SourceRegistration = "registration"
	SourceRevision     = "revision"
)

// Row is one answer to insert
type Row struct {
	QuestionID int64
	Answer     string
	LogicValue *string
}

// Batch is one write call's worth of rows sharing a batch id and timestamp
type Batch struct {
	Owner        string
	SpeciesID    int64
	AnimalNumber string
	BatchID      string
	EntrySource  string
	CreatedAt    time.Time
	Rows         []Row
}

// BatchRef identifies one stored batch
type BatchRef struct {
	BatchID   string
	CreatedAt time.Time
}

// Stored is one persisted answer row read back for snapshot building
type Stored struct {
	QuestionID int64
	Answer     string
	CreatedAt  time.Time
}

// FactRow is one gestation ledger row to append
type FactRow struct {
	Owner        string
	SpeciesID    int64
	AnimalNumber string
	RecordDate   string
	Pregnancy    string
	Lactating    string
	BatchID      string
	CreatedAt    time.Time
}

// Repo is the answers persistence surface used by the service layer
type Repo interface {
	InsertRegistration(ctx context.Context, b Batch) error
	InsertBatch(ctx context.Context, b Batch) error
	LatestBatch(ctx context.Context, owner string, speciesID int64, animalNumber string) (*BatchRef, error)
	LatestBatchForCategory(
		ctx context.Context, owner string, speciesID int64, animalNumber string, categoryID int64,
	) (*BatchRef, error)
	AnswersForBatch(
		ctx context.Context, owner string, speciesID int64, animalNumber, batchID string,
	) ([]Stored, error)
	DeleteCategoryDay(
		ctx context.Context, owner string, speciesID int64, animalNumber string, categoryID int64, day string,
	) error
	DeleteBatch(ctx context.Context, owner string, speciesID int64, animalNumber, batchID string) error
	BatchForDay(
		ctx context.Context, owner string, speciesID int64, animalNumber string, categoryID int64, day string,
	) (string, bool, error)
	BatchForHeatValue(
		ctx context.Context, owner string, speciesID int64, animalNumber string,
		categoryID int64, tag, value string,
	) (string, bool, error)
	HeatRows(
		ctx context.Context, owner string, speciesID int64, animalNumber, tag string, categoryID int64,
	) ([]snapshot.HeatRow, error)
	PreviousHeatRows(
		ctx context.Context, owner string, speciesID int64, animalNumber string,
		languageID int64, tag string, categoryID int64, maxValue string,
	) ([]snapshot.PreviousRow, error)
	TagsForQuestions(ctx context.Context, ids []int64) (map[int64]string, error)
	InsertGestationFact(ctx context.Context, f FactRow) error
	GestationHistory(
		ctx context.Context, owner string, speciesID int64, animalNumber string,
	) ([]domain.GestationFact, error)
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

// InsertRegistration claims the animal number for its first registration
// the unique index raises 23505 on any re-registration, even one whose
// question set shares nothing with the original rows
func (r *queries) InsertRegistration(ctx context.Context, b Batch) error {
	const sql = `
		insert into animal_registrations
			(user_id, animal_id, animal_number, batch_id, created_at)
		values ($1, $2, $3, $4, $5)
	`
	if _, err := r.q.Exec(ctx, sql,
		b.Owner, b.SpeciesID, b.AnimalNumber, b.BatchID, b.CreatedAt,
	); err != nil {
		return perr.FromPostgres(err, "insert registration")
	}
	return nil
}

// InsertBatch writes every row of one batch with the shared id and timestamp
func (r *queries) InsertBatch(ctx context.Context, b Batch) error {
	const sql = `
		insert into answer_instances
			(user_id, animal_id, animal_number, question_id, answer, logic_value,
			 entry_source, excluded, batch_id, created_at)
		values ($1, $2, $3, $4, $5, $6, $7, false, $8, $9)
	`
	for _, row := range b.Rows {
		if _, err := r.q.Exec(ctx, sql,
			b.Owner, b.SpeciesID, b.AnimalNumber,
			row.QuestionID, row.Answer, row.LogicValue,
			b.EntrySource, b.BatchID, b.CreatedAt,
		); err != nil {
			return perr.FromPostgres(err, "insert answer batch")
		}
	}
	return nil
}

func (r *queries) LatestBatch(
	ctx context.Context, owner string, speciesID int64, animalNumber string,
) (*BatchRef, error) {
	const sql = `
		select batch_id::text, created_at
		from answer_instances
		where user_id = $1 and animal_id = $2 and animal_number = $3 and not excluded
		order by created_at desc
		limit 1
	`
	return r.scanRef(ctx, sql, owner, speciesID, animalNumber)
}

func (r *queries) LatestBatchForCategory(
	ctx context.Context, owner string, speciesID int64, animalNumber string, categoryID int64,
) (*BatchRef, error) {
	const sql = `
		select a.batch_id::text, a.created_at
		from answer_instances a
		join questions q on q.id = a.question_id
		where a.user_id = $1 and a.animal_id = $2 and a.animal_number = $3
		  and not a.excluded and q.category_id = $4
		order by a.created_at desc
		limit 1
	`
	return r.scanRef(ctx, sql, owner, speciesID, animalNumber, categoryID)
}

func (r *queries) scanRef(ctx context.Context, sql string, args ...any) (*BatchRef, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "latest batch")
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	var ref BatchRef
	if err := rows.Scan(&ref.BatchID, &ref.CreatedAt); err != nil {
		return nil, perr.FromPostgres(err, "latest batch scan")
	}
	return &ref, nil
}

func (r *queries) AnswersForBatch(
	ctx context.Context, owner string, speciesID int64, animalNumber, batchID string,
) ([]Stored, error) {
	const sql = `
		select question_id, answer, created_at
		from answer_instances
		where user_id = $1 and animal_id = $2 and animal_number = $3
		  and batch_id = $4 and not excluded
	`
	rows, err := r.q.Query(ctx, sql, owner, speciesID, animalNumber, batchID)
	if err != nil {
		return nil, perr.FromPostgres(err, "batch answers")
	}
	defer rows.Close()

	var out []Stored
	for rows.Next() {
		var s Stored
		if err := rows.Scan(&s.QuestionID, &s.Answer, &s.CreatedAt); err != nil {
			return nil, perr.FromPostgres(err, "batch answers scan")
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeleteCategoryDay removes the active rows of one category whose creation
// date matches day; other days and categories stay untouched
func (r *queries) DeleteCategoryDay(
	ctx context.Context, owner string, speciesID int64, animalNumber string, categoryID int64, day string,
) error {
	const sql = `
		delete from answer_instances a
		using questions q
		where q.id = a.question_id
		  and a.user_id = $1 and a.animal_id = $2 and a.animal_number = $3
		  and q.category_id = $4
		  and (a.created_at at time zone 'utc')::date = $5::date
		  and not a.excluded
	`
	if _, err := r.q.Exec(ctx, sql, owner, speciesID, animalNumber, categoryID, day); err != nil {
		return perr.FromPostgres(err, "delete category day")
	}
	return nil
}

func (r *queries) DeleteBatch(
	ctx context.Context, owner string, speciesID int64, animalNumber, batchID string,
) error {
	const sql = `
		delete from answer_instances
		where user_id = $1 and animal_id = $2 and animal_number = $3
		  and batch_id = $4 and not excluded
	`
	if _, err := r.q.Exec(ctx, sql, owner, speciesID, animalNumber, batchID); err != nil {
		return perr.FromPostgres(err, "delete batch")
	}
	return nil
}

func (r *queries) BatchForDay(
	ctx context.Context, owner string, speciesID int64, animalNumber string, categoryID int64, day string,
) (string, bool, error) {
	const sql = `
		select a.batch_id::text
		from answer_instances a
		join questions q on q.id = a.question_id
		where a.user_id = $1 and a.animal_id = $2 and a.animal_number = $3
		  and q.category_id = $4
		  and (a.created_at at time zone 'utc')::date = $5::date
		  and not a.excluded
		order by a.created_at desc
		limit 1
	`
	return r.scanBatchID(ctx, sql, owner, speciesID, animalNumber, categoryID, day)
}

// BatchForHeatValue finds the prior batch in the heat category whose
// date-of-heat answer equals value; that batch is the same estrus cycle
// being corrected
func (r *queries) BatchForHeatValue(
	ctx context.Context, owner string, speciesID int64, animalNumber string,
	categoryID int64, tag, value string,
) (string, bool, error) {
	const sql = `
		select a.batch_id::text
		from answer_instances a
		join questions q on q.id = a.question_id
		join question_tags t on t.id = q.question_tag_id
		where a.user_id = $1 and a.animal_id = $2 and a.animal_number = $3
		  and q.category_id = $4 and t.name = $5 and a.answer = $6
		  and not a.excluded
		order by a.created_at desc
		limit 1
	`
	return r.scanBatchID(ctx, sql, owner, speciesID, animalNumber, categoryID, tag, value)
}

func (r *queries) scanBatchID(ctx context.Context, sql string, args ...any) (string, bool, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return "", false, perr.FromPostgres(err, "batch lookup")
	}
	defer rows.Close()
	if !rows.Next() {
		return "", false, rows.Err()
	}
	var id string
	if err := rows.Scan(&id); err != nil {
		return "", false, perr.FromPostgres(err, "batch lookup scan")
	}
	return id, true, nil
}

func (r *queries) HeatRows(
	ctx context.Context, owner string, speciesID int64, animalNumber, tag string, categoryID int64,
) ([]snapshot.HeatRow, error) {
	const sql = `
		select a.batch_id::text, a.answer
		from answer_instances a
		join questions q on q.id = a.question_id
		join question_tags t on t.id = q.question_tag_id
		where a.user_id = $1 and a.animal_id = $2 and a.animal_number = $3
		  and q.category_id = $4 and t.name = $5
		  and not a.excluded
	`
	rows, err := r.q.Query(ctx, sql, owner, speciesID, animalNumber, categoryID, tag)
	if err != nil {
		return nil, perr.FromPostgres(err, "heat rows")
	}
	defer rows.Close()

	var out []snapshot.HeatRow
	for rows.Next() {
		var h snapshot.HeatRow
		if err := rows.Scan(&h.BatchID, &h.Value); err != nil {
			return nil, perr.FromPostgres(err, "heat rows scan")
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// PreviousHeatRows returns non-current date-of-heat answers with their
// localized category label for flat grouping
func (r *queries) PreviousHeatRows(
	ctx context.Context, owner string, speciesID int64, animalNumber string,
	languageID int64, tag string, categoryID int64, maxValue string,
) ([]snapshot.PreviousRow, error) {
	const sql = `
		select coalesce(cl.name, ''), a.answer
		from answer_instances a
		join questions q on q.id = a.question_id
		join question_tags t on t.id = q.question_tag_id
		left join category_languages cl
		       on cl.category_id = q.category_id and cl.language_id = $4
		where a.user_id = $1 and a.animal_id = $2 and a.animal_number = $3
		  and q.category_id = $5 and t.name = $6
		  and a.answer <> $7
		  and not a.excluded
	`
	rows, err := r.q.Query(ctx, sql, owner, speciesID, animalNumber, languageID, categoryID, tag, maxValue)
	if err != nil {
		return nil, perr.FromPostgres(err, "previous heat rows")
	}
	defer rows.Close()

	var out []snapshot.PreviousRow
	for rows.Next() {
		var p snapshot.PreviousRow
		if err := rows.Scan(&p.Category, &p.Value); err != nil {
			return nil, perr.FromPostgres(err, "previous heat rows scan")
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *queries) TagsForQuestions(ctx context.Context, ids []int64) (map[int64]string, error) {
	const sql = `
		select q.id, coalesce(t.name, '')
		from questions q
		left join question_tags t on t.id = q.question_tag_id
		where q.id = any($1)
	`
	rows, err := r.q.Query(ctx, sql, ids)
	if err != nil {
		return nil, perr.FromPostgres(err, "question tags")
	}
	defer rows.Close()

	out := make(map[int64]string, len(ids))
	for rows.Next() {
		var id int64
		var tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, perr.FromPostgres(err, "question tags scan")
		}
		out[id] = tag
	}
	return out, rows.Err()
}

func (r *queries) InsertGestationFact(ctx context.Context, f FactRow) error {
	const sql = `
		insert into gestation_facts
			(user_id, animal_id, animal_number, record_date,
			 pregnancy_status, lactating_status, batch_id, created_at)
		values ($1, $2, $3, $4::date, $5, $6, $7, $8)
	`
	if _, err := r.q.Exec(ctx, sql,
		f.Owner, f.SpeciesID, f.AnimalNumber, f.RecordDate,
		f.Pregnancy, f.Lactating, f.BatchID, f.CreatedAt,
	); err != nil {
		return perr.FromPostgres(err, "insert gestation fact")
	}
	return nil
}

func (r *queries) GestationHistory(
	ctx context.Context, owner string, speciesID int64, animalNumber string,
) ([]domain.GestationFact, error) {
	const sql = `
		select animal_number, record_date::text,
		       pregnancy_status, lactating_status, batch_id::text, created_at
		from gestation_facts
		where user_id = $1 and animal_id = $2 and animal_number = $3
		order by record_date desc, created_at desc
	`
	rows, err := r.q.Query(ctx, sql, owner, speciesID, animalNumber)
	if err != nil {
		return nil, perr.FromPostgres(err, "gestation history")
	}
	defer rows.Close()

	var out []domain.GestationFact
	for rows.Next() {
		var f domain.GestationFact
		if err := rows.Scan(
			&f.AnimalNumber, &f.RecordDate, &f.Pregnancy, &f.Lactating, &f.BatchID, &f.CreatedAt,
		); err != nil {
			return nil, perr.FromPostgres(err, "gestation history scan")
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
