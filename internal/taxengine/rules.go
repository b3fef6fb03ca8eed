package taxengine

import "math"

// FilingStatus selects which standard deduction applies.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "married_jointly"
	FilingMarriedSeparately FilingStatus = "married_separately"
	FilingHeadOfHousehold   FilingStatus = "head_of_household"
)

// Bracket is a marginal income tax bracket. Rate is a percentage; Limit is
// the upper bound of taxable income the rate applies to.
type Bracket struct {
	Rate  float64
	Limit float64
}

// Rules holds the IRS figures for a single tax year.
type Rules struct {
	StandardDeductions map[FilingStatus]float64
	Brackets           []Bracket
	SETaxRate          float64
	QBIDeductionRate   float64
	SSWageBase         float64
}

// Figures from IRS revenue procedures and Publication 505. The 2026 row is
// projected and reuses the 2024 inflation adjustments.
var rulesByYear = map[int]Rules{
	2023: {
		StandardDeductions: map[FilingStatus]float64{
			FilingSingle:            13850,
			FilingMarriedJointly:    27700,
			FilingMarriedSeparately: 13850,
			FilingHeadOfHousehold:   20800,
		},
		Brackets: []Bracket{
			{Rate: 10, Limit: 11000},
			{Rate: 12, Limit: 44725},
			{Rate: 22, Limit: 95375},
			{Rate: 24, Limit: 182100},
			{Rate: 32, Limit: 231250},
			{Rate: 35, Limit: 578125},
			{Rate: 37, Limit: math.Inf(1)},
		},
		SETaxRate:        0.153,
		QBIDeductionRate: 0.20,
		SSWageBase:       160200,
	},
	2024: {
		StandardDeductions: map[FilingStatus]float64{
			FilingSingle:            14600,
			FilingMarriedJointly:    29200,
			FilingMarriedSeparately: 14600,
			FilingHeadOfHousehold:   21900,
		},
		Brackets: []Bracket{
			{Rate: 10, Limit: 11600},
			{Rate: 12, Limit: 47150},
			{Rate: 22, Limit: 100525},
			{Rate: 24, Limit: 191950},
			{Rate: 32, Limit: 243725},
			{Rate: 35, Limit: 609350},
			{Rate: 37, Limit: math.Inf(1)},
		},
		SETaxRate:        0.153,
		QBIDeductionRate: 0.20,
		SSWageBase:       168600,
	},
	2025: {
		StandardDeductions: map[FilingStatus]float64{
			FilingSingle:            15000,
			FilingMarriedJointly:    30000,
			FilingMarriedSeparately: 15000,
			FilingHeadOfHousehold:   22500,
		},
		Brackets: []Bracket{
			{Rate: 10, Limit: 11925},
			{Rate: 12, Limit: 48475},
			{Rate: 22, Limit: 103350},
			{Rate: 24, Limit: 197300},
			{Rate: 32, Limit: 250525},
			{Rate: 35, Limit: 626350},
			{Rate: 37, Limit: math.Inf(1)},
		},
		SETaxRate:        0.153,
		QBIDeductionRate: 0.20,
		SSWageBase:       176100,
	},
	2026: {
		StandardDeductions: map[FilingStatus]float64{
			FilingSingle:            14600,
			FilingMarriedJointly:    29200,
			FilingMarriedSeparately: 14600,
			FilingHeadOfHousehold:   21900,
		},
		Brackets: []Bracket{
			{Rate: 10, Limit: 11600},
			{Rate: 12, Limit: 47150},
			{Rate: 22, Limit: 100525},
			{Rate: 24, Limit: 191950},
			{Rate: 32, Limit: 243725},
			{Rate: 35, Limit: 609350},
			{Rate: 37, Limit: math.Inf(1)},
		},
		SETaxRate:        0.153,
		QBIDeductionRate: 0.20,
		SSWageBase:       168600,
	},
}

// SupportedYears returns the tax years with a rules table, ascending.
func SupportedYears() []int {
	return []int{2023, 2024, 2025, 2026}
}
