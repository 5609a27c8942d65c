// Package classify normalizes freeform multilingual animal answers into a
// canonical species-role tag (cow, calf, buffalo)
// Pipeline
// 1 Unicode NFKC normalization
// 2 Case folding
// 3 Whitespace trim
// then exact lookup against the configured term sets
package classify

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical tags produced by the classifier
const (
	TagCow     = "cow"
	TagCalf    = "calf"
	TagBuffalo = "buffalo"
)

// Terms maps a canonical tag to its accepted freeform spellings
// the map is injected configuration, not a language-level constant, so
// deployments can extend coverage without code changes
type Terms map[string][]string

// Classifier matches folded answers against an inverted term index
type Classifier struct {
	index map[string]string
}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFKC, cases.Fold())
	},
}

func fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = strings.ToLower(s)
	}
	return strings.TrimSpace(ns)
}

// New builds a Classifier from the given term sets
// later tags never override earlier single-term claims; a term listed under
// two tags keeps the first tag seen in map iteration-independent sorted order
func New(terms Terms) *Classifier {
	idx := make(map[string]string, 64)
	for _, tag := range orderedTags(terms) {
		for _, term := range terms[tag] {
			key := fold(term)
			if key == "" {
				continue
			}
			if _, taken := idx[key]; !taken {
				idx[key] = tag
			}
		}
	}
	return &Classifier{index: idx}
}

// orderedTags returns the canonical tags first, then any extras sorted
func orderedTags(terms Terms) []string {
	out := make([]string, 0, len(terms))
	for _, t := range []string{TagCow, TagCalf, TagBuffalo} {
		if _, ok := terms[t]; ok {
			out = append(out, t)
		}
	}
	extra := make([]string, 0, len(terms))
	for t := range terms {
		switch t {
		case TagCow, TagCalf, TagBuffalo:
		default:
			extra = append(extra, t)
		}
	}
	for i := 1; i < len(extra); i++ {
		for j := i; j > 0 && extra[j] < extra[j-1]; j-- {
			extra[j], extra[j-1] = extra[j-1], extra[j]
		}
	}
	return append(out, extra...)
}

// Classify returns the canonical tag for a freeform answer, or "" when the
// answer names no known species role
func (c *Classifier) Classify(answer string) string {
	return c.index[fold(answer)]
}

// DefaultTerms covers the languages the questionnaire ships translations for
// (English, Hindi, Telugu, Marathi, Punjabi plus common romanizations)
func DefaultTerms() Terms {
	return Terms{
		TagCow: {
			"cow", "cows", "गाय", "ఆవు", "गाई", "ਗਾਂ", "gaay", "gai", "aavu",
		},
		TagCalf: {
			"calf", "calves", "बछड़ा", "बछड़ी", "दूध पीता बच्चा", "వయస్సు",
			"దూడ", "वासरू", "ਵੱਛਾ", "bachda", "bachdi", "vasru", "dooda",
		},
		TagBuffalo: {
			"buffalo", "buffaloes", "भैंस", "గేదె", "म्हैस", "ਮੱਝ",
			"bhains", "bhens", "mhais", "gede",
		},
	}
}
