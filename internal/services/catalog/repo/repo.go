// Package repo provides postgres access for the question catalog
package repo

import (
	"context"

	"herdbook/internal/modkit/repokit"
	perr "herdbook/internal/platform/errors"
	"herdbook/internal/services/catalog/domain"
)

// Repo defines the repository contract for catalog reads
type Repo interface {
	QuestionsFor(ctx context.Context, speciesID, languageID int64) ([]domain.QuestionView, error)
	QuestionsForCategory(ctx context.Context, speciesID, languageID, categoryID int64) ([]domain.QuestionView, error)
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

// the translation is optional here and falls back to the master text;
// the category-scoped variant below requires it present
const baseSelect = `
select q.id,
       q.question,
       coalesce(ql.question, q.question) as localized,
       coalesce(ft.name, '') as form_type,
       ftl.name as form_type_local,
       coalesce(vr.name, '') as validation_rule,
       coalesce(vr.constant_value, '') as constant_value,
       coalesce(qt.name, '') as tag,
       coalesce(qu.name, '') as unit,
       coalesce(ql.hint, q.hint) as hint,
       q.category_id,
       coalesce(cl.name, '') as category,
       coalesce(scl.name, '') as sub_category,
       q.sequence_number
from questions q
join animal_questions aq on aq.question_id = q.id and aq.animal_id = $1
left join question_languages ql on ql.question_id = q.id and ql.language_id = $2
left join form_types ft  on ft.id = q.form_type_id
left join form_types ftl on ftl.id = ql.form_type_id
left join validation_rules vr on vr.id = q.validation_rule_id
left join question_tags qt on qt.id = q.question_tag_id
left join question_units qu on qu.id = q.question_unit_id
left join category_languages cl
       on cl.category_id = q.category_id and cl.language_id = $2
left join sub_category_languages scl
       on scl.sub_category_id = q.sub_category_id and scl.language_id = $2
`

func (r *queries) QuestionsFor(ctx context.Context, speciesID, languageID int64) ([]domain.QuestionView, error) {
	const sql = baseSelect + `order by q.sequence_number, q.id`
	return r.scan(ctx, sql, speciesID, languageID)
}

// QuestionsForCategory requires the category label to resolve in the
// requested language, so the category_languages branch flips to an inner join
func (r *queries) QuestionsForCategory(
	ctx context.Context, speciesID, languageID, categoryID int64,
) ([]domain.QuestionView, error) {
	const sql = `
select q.id,
       q.question,
       ql.question as localized,
       coalesce(ft.name, '') as form_type,
       ftl.name as form_type_local,
       coalesce(vr.name, '') as validation_rule,
       coalesce(vr.constant_value, '') as constant_value,
       coalesce(qt.name, '') as tag,
       coalesce(qu.name, '') as unit,
       coalesce(ql.hint, q.hint) as hint,
       q.category_id,
       cl.name as category,
       coalesce(scl.name, '') as sub_category,
       q.sequence_number
from questions q
join animal_questions aq on aq.question_id = q.id and aq.animal_id = $1
join question_languages ql on ql.question_id = q.id and ql.language_id = $2
join category_languages cl
  on cl.category_id = q.category_id and cl.language_id = $2
left join form_types ft  on ft.id = q.form_type_id
left join form_types ftl on ftl.id = ql.form_type_id
left join validation_rules vr on vr.id = q.validation_rule_id
left join question_tags qt on qt.id = q.question_tag_id
left join question_units qu on qu.id = q.question_unit_id
left join sub_category_languages scl
       on scl.sub_category_id = q.sub_category_id and scl.language_id = $2
where q.category_id = $3
order by q.sequence_number, q.id
`
	return r.scan(ctx, sql, speciesID, languageID, categoryID)
}

func (r *queries) scan(ctx context.Context, sql string, args ...any) ([]domain.QuestionView, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "catalog query")
	}
	defer rows.Close()

	var out []domain.QuestionView
	for rows.Next() {
		var v domain.QuestionView
		if err := rows.Scan(
			&v.ID,
			&v.Question,
			&v.Localized,
			&v.FormType,
			&v.FormTypeLocal,
			&v.Validation,
			&v.ConstantValue,
			&v.Tag,
			&v.Unit,
			&v.Hint,
			&v.CategoryID,
			&v.Category,
			&v.SubCategory,
			&v.Sequence,
		); err != nil {
			return nil, perr.FromPostgres(err, "catalog scan")
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "catalog rows")
	}
	return out, nil
}
