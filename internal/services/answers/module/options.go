package module

import (
	"strings"

	"herdbook/internal/core/classify"
	"herdbook/internal/platform/config"
)

// Options holds configuration settings for the answers module
type Options struct {
	PregnancyTag   string
	LactatingTag   string
	EventDateTag   string
	HeatCategoryID int64
	HeatDateTag    string
	Terms          classify.Terms
}

// FromConfig reads configuration settings from the config.Conf
// classifier terms can be extended per tag via CSV env values, e.g.
// CORE_ANSWERS_TERMS_COW="kuh,vaca"
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_ANSWERS_")

	terms := classify.DefaultTerms()
	for _, tag := range []string{classify.TagCow, classify.TagCalf, classify.TagBuffalo} {
		extra := af.MayString("TERMS_"+strings.ToUpper(tag), "")
		if extra == "" {
			continue
		}
		for _, t := range strings.Split(extra, ",") {
			if t = strings.TrimSpace(t); t != "" {
				terms[tag] = append(terms[tag], t)
			}
		}
	}

	return Options{
		PregnancyTag:   af.MayString("PREGNANCY_TAG", "pregnancy_status"),
		LactatingTag:   af.MayString("LACTATING_TAG", "lactating_status"),
		EventDateTag:   af.MayString("EVENT_DATE_TAG", "record_date"),
		HeatCategoryID: int64(af.MayInt("HEAT_CATEGORY_ID", 99)),
		HeatDateTag:    af.MayString("HEAT_DATE_TAG", "date_of_heat"),
		Terms:          terms,
	}
}
