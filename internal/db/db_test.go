package db

import (
	"strings"
	"testing"
)

func TestSchema_Embedded(t *testing.T) {
	if strings.TrimSpace(Schema) == "" {
		t.Fatalf("embedded schema is empty")
	}
	for _, tbl := range []string{
		"questions", "question_languages", "animal_questions",
		"answer_instances", "animal_registrations",
		"gestation_facts", "mother_calf_mappings",
	} {
		if !strings.Contains(Schema, tbl) {
			t.Errorf("schema missing table %q", tbl)
		}
	}
	if !strings.Contains(Schema, "uq_answers_registration") {
		t.Errorf("schema missing registration unique index")
	}
	if !strings.Contains(Schema, "uq_animal_registration") {
		t.Errorf("schema missing animal-level registration index")
	}
}
