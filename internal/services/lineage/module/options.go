package module

import "herdbook/internal/platform/config"

// Options holds configuration settings for the lineage module
type Options struct {
	DeliveryDateTag string
	AIDateTag       string
	BullNumberTag   string
	SemenCompanyTag string
	MotherYieldTag  string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	lf := cfg.Prefix("CORE_LINEAGE_")
	return Options{
		DeliveryDateTag: lf.MayString("DELIVERY_DATE_TAG", "delivery_date"),
		AIDateTag:       lf.MayString("AI_DATE_TAG", "ai_date"),
		BullNumberTag:   lf.MayString("BULL_NUMBER_TAG", "bull_number"),
		SemenCompanyTag: lf.MayString("SEMEN_COMPANY_TAG", "semen_company"),
		MotherYieldTag:  lf.MayString("MOTHER_YIELD_TAG", "mother_yield"),
	}
}
