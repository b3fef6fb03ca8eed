// Package taxengine calculates federal tax estimates for sole proprietors:
// self-employment tax, marginal income tax, and quarterly estimated payments.
package taxengine

import (
	"fmt"
	"time"
)

// DefaultTaxYear is used when callers don't specify a year.
const DefaultTaxYear = 2025

// SE tax is assessed on 92.35% of net profit: 12.4% Social Security up to
// the wage base, 2.9% Medicare on everything, plus 0.9% additional Medicare
// over $200,000.
const (
	seIncomeFactor         = 0.9235
	socialSecurityRate     = 0.124
	medicareRate           = 0.029
	additionalMedicareRate = 0.009
	additionalMedicareOver = 200000.0
)

// Quarterly estimates assume a conservative 30% profit margin and a 22%
// effective income tax rate, per Form 1040-ES worksheet simplifications.
const (
	assumedProfitMargin    = 0.30
	assumedEffectiveIncome = 0.22
)

// SelfEmploymentTax breaks down the SE tax on a net profit figure.
type SelfEmploymentTax struct {
	SocialSecurity    float64 `json:"social_security"`
	Medicare          float64 `json:"medicare"`
	TotalSETax        float64 `json:"total_se_tax"`
	DeductiblePortion float64 `json:"deductible_portion"`
	SSWageBase        float64 `json:"ss_wage_base"`
	TaxYear           int     `json:"tax_year"`
}

// QuarterlyEstimate is a Form 1040-ES style estimated payment schedule.
type QuarterlyEstimate struct {
	QuarterlyAmount   float64  `json:"quarterly_amount"`
	AnnualTotal       float64  `json:"annual_total"`
	DueDates          []string `json:"due_dates"`
	SelfEmploymentTax float64  `json:"self_employment_tax"`
	IncomeTax         float64  `json:"income_tax"`
}

// Engine computes tax figures using a single year's rules table. It is
// read-only after construction and safe for concurrent use.
type Engine struct {
	year  int
	rules Rules
}

// NewEngine creates an Engine for the given tax year.
func NewEngine(year int) (*Engine, error) {
	rules, ok := rulesByYear[year]
	if !ok {
		return nil, fmt.Errorf("tax year %d not supported, available years: %v", year, SupportedYears())
	}
	return &Engine{year: year, rules: rules}, nil
}

// Year returns the tax year this engine calculates for.
func (e *Engine) Year() int {
	return e.year
}

// StandardDeduction returns the standard deduction for a filing status,
// falling back to single for unknown statuses.
func (e *Engine) StandardDeduction(status FilingStatus) float64 {
	if d, ok := e.rules.StandardDeductions[status]; ok {
		return d
	}
	return e.rules.StandardDeductions[FilingSingle]
}

// SelfEmploymentTax calculates Social Security and Medicare tax on net
// business profit, capping the Social Security portion at the year's wage
// base. Half of the total is an above-the-line deduction.
func (e *Engine) SelfEmploymentTax(netProfit float64) SelfEmploymentTax {
	if netProfit < 0 {
		netProfit = 0
	}

	seIncome := netProfit * seIncomeFactor

	ssBase := seIncome
	if ssBase > e.rules.SSWageBase {
		ssBase = e.rules.SSWageBase
	}
	socialSecurity := ssBase * socialSecurityRate

	medicare := seIncome * medicareRate
	if seIncome > additionalMedicareOver {
		medicare += (seIncome - additionalMedicareOver) * additionalMedicareRate
	}

	total := socialSecurity + medicare

	return SelfEmploymentTax{
		SocialSecurity:    socialSecurity,
		Medicare:          medicare,
		TotalSETax:        total,
		DeductiblePortion: total * 0.50,
		SSWageBase:        e.rules.SSWageBase,
		TaxYear:           e.year,
	}
}

// IncomeTax walks the marginal brackets over taxable income.
func (e *Engine) IncomeTax(taxableIncome float64) float64 {
	if taxableIncome <= 0 {
		return 0
	}

	tax := 0.0
	lower := 0.0
	for _, b := range e.rules.Brackets {
		upper := b.Limit
		if taxableIncome < upper {
			upper = taxableIncome
		}
		if upper <= lower {
			break
		}
		tax += (upper - lower) * b.Rate / 100
		lower = b.Limit
	}
	return tax
}

// QuarterlyEstimate projects estimated payments from annual revenue using the
// assumed profit margin and effective income tax rate.
func (e *Engine) QuarterlyEstimate(annualRevenue float64) QuarterlyEstimate {
	if annualRevenue < 0 {
		annualRevenue = 0
	}

	estimatedProfit := annualRevenue * assumedProfitMargin
	seTax := e.SelfEmploymentTax(estimatedProfit)
	incomeTax := estimatedProfit * assumedEffectiveIncome
	annualTotal := seTax.TotalSETax + incomeTax

	return QuarterlyEstimate{
		QuarterlyAmount:   annualTotal / 4,
		AnnualTotal:       annualTotal,
		DueDates:          dueDates(e.year),
		SelfEmploymentTax: seTax.TotalSETax,
		IncomeTax:         incomeTax,
	}
}

// dueDates lists the 1040-ES due dates for payments on income earned in the
// year following the tax year's filing season.
func dueDates(year int) []string {
	next := year + 1
	return []string{
		fmt.Sprintf("April 15, %d", next),
		fmt.Sprintf("June 15, %d", next),
		fmt.Sprintf("September 15, %d", next),
		fmt.Sprintf("January 15, %d", next+1),
	}
}

// CurrentTaxYear returns the engine year for today's date, clamped to the
// supported range.
func CurrentTaxYear(now time.Time) int {
	year := now.Year()
	years := SupportedYears()
	if year < years[0] {
		return years[0]
	}
	if year > years[len(years)-1] {
		return years[len(years)-1]
	}
	return year
}
