// Package startup applies the IRC section 195 rules for deducting and
// amortizing business start-up costs.
package startup

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/fylr/fylr-engine/internal/model"
)

// IRC section 195 constants. Up to $5,000 of start-up costs is deductible in
// year one, reduced dollar-for-dollar once total costs exceed $50,000; the
// remainder amortizes over 180 months.
const (
	immediateDeductionCap = 5000
	phaseOutThreshold     = 50000
	amortizationMonths    = 180
	fullYearMonths        = 12
)

// Deduction strategy labels, keyed off revenue versus total start-up costs.
const (
	StrategyLossLeader    = "loss-leader"
	StrategyPartialOffset = "partial-offset"
	StrategyFullOffset    = "full-offset"
)

const amortizationForm = "Form 4562 (Depreciation and Amortization)"

// Optimizer computes start-up cost deduction schedules. It holds no state
// and is safe for concurrent use.
type Optimizer struct {
	logger *slog.Logger
}

// NewOptimizer creates an Optimizer.
func NewOptimizer(logger *slog.Logger) *Optimizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Optimizer{logger: logger}
}

// Optimize computes the deduction schedule assuming a full first year of
// operation.
func (o *Optimizer) Optimize(expenses []model.StartupExpense, revenue float64) model.StartupCostResult {
	return o.OptimizeWithMonths(expenses, revenue, fullYearMonths)
}

// OptimizeWithMonths computes the deduction schedule with an explicit count
// of months the business operates in its first year. Negative amounts
// contribute nothing rather than failing the calculation.
func (o *Optimizer) OptimizeWithMonths(expenses []model.StartupExpense, revenue float64, monthsActive int) model.StartupCostResult {
	if monthsActive < 0 || monthsActive > fullYearMonths {
		monthsActive = fullYearMonths
	}

	total := decimal.Zero
	for _, e := range expenses {
		if !e.IsStartupCost || e.Amount <= 0 {
			continue
		}
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}

	if total.IsZero() {
		return model.StartupCostResult{
			IRSForm:         amortizationForm,
			Recommendations: []string{recordKeepingAdvice},
		}
	}

	immediate := decimal.Min(total, decimal.NewFromInt(immediateDeductionCap))

	// Phase-out: every dollar of total cost over $50,000 reduces the
	// immediate allowance dollar-for-dollar, floored at zero.
	excess := total.Sub(decimal.NewFromInt(phaseOutThreshold))
	if excess.IsPositive() {
		immediate = decimal.Max(immediate.Sub(excess), decimal.Zero)
	}

	amortizable := total.Sub(immediate)
	monthly := decimal.Zero
	if amortizable.IsPositive() {
		monthly = amortizable.Div(decimal.NewFromInt(amortizationMonths)).Round(2)
	}

	firstYear := immediate.Add(monthly.Mul(decimal.NewFromInt(int64(monthsActive))))
	strategy := strategyFor(revenue, total)

	totalF, _ := total.Float64()
	immediateF, _ := immediate.Float64()
	amortizableF, _ := amortizable.Float64()
	monthlyF, _ := monthly.Float64()
	firstYearF, _ := firstYear.Float64()

	o.logger.Debug("startup costs optimized",
		"total", totalF,
		"immediate", immediateF,
		"strategy", strategy)

	return model.StartupCostResult{
		TotalStartupCosts:       totalF,
		ImmediateDeduction:      immediateF,
		AmortizableAmount:       amortizableF,
		MonthlyAmortization:     monthlyF,
		FirstYearTotalDeduction: firstYearF,
		Strategy:                strategy,
		IRSForm:                 amortizationForm,
		Recommendations:         buildRecommendations(revenue, totalF, amortizableF, firstYearF),
	}
}

func strategyFor(revenue float64, total decimal.Decimal) string {
	totalF, _ := total.Float64()
	switch {
	case revenue == 0:
		return StrategyLossLeader
	case revenue < totalF:
		return StrategyPartialOffset
	default:
		return StrategyFullOffset
	}
}

const recordKeepingAdvice = "Keep detailed records of all startup expenses with dates and receipts for audit protection."

func buildRecommendations(revenue, totalCosts, amortizable, firstYearDeduction float64) []string {
	var recs []string

	if revenue == 0 {
		recs = append(recs,
			fmt.Sprintf("Your startup costs of $%.2f will create a $%.2f business loss this year, which may offset other income on your tax return.",
				totalCosts, firstYearDeduction),
			"File Schedule C even with $0 revenue to claim your startup deductions.",
			"This loss can reduce your overall tax liability if you have other income (W-2, 1099, etc.).",
		)
	}

	if amortizable > 0 {
		recs = append(recs,
			fmt.Sprintf("$%.2f will be amortized over 15 years. Track this in Form 4562 for future years.",
				amortizable))
	}

	recs = append(recs, recordKeepingAdvice)
	return recs
}
