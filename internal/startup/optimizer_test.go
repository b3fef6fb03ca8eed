package startup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fylr/fylr-engine/internal/model"
)

func TestOptimizeBelowImmediateCap(t *testing.T) {
	optimizer := NewOptimizer(nil)

	result := optimizer.Optimize([]model.StartupExpense{
		{Amount: 800, IsStartupCost: true},
		{Amount: 3500, IsStartupCost: true},
	}, 0)

	assert.InDelta(t, 4300.0, result.TotalStartupCosts, 0.001)
	assert.InDelta(t, 4300.0, result.ImmediateDeduction, 0.001)
	assert.InDelta(t, 0.0, result.AmortizableAmount, 0.001)
	assert.InDelta(t, 0.0, result.MonthlyAmortization, 0.001)
	assert.InDelta(t, 4300.0, result.FirstYearTotalDeduction, 0.001)
	assert.Equal(t, StrategyLossLeader, result.Strategy)
	assert.NotEmpty(t, result.Recommendations)
}

func TestOptimizeAboveImmediateCap(t *testing.T) {
	optimizer := NewOptimizer(nil)

	result := optimizer.Optimize([]model.StartupExpense{
		{Amount: 12000, IsStartupCost: true},
	}, 20000)

	assert.InDelta(t, 12000.0, result.TotalStartupCosts, 0.001)
	assert.InDelta(t, 5000.0, result.ImmediateDeduction, 0.001)
	assert.InDelta(t, 7000.0, result.AmortizableAmount, 0.001)
	assert.InDelta(t, 38.89, result.MonthlyAmortization, 0.01)
	assert.InDelta(t, 5000.0+38.89*12, result.FirstYearTotalDeduction, 0.1)
	assert.Equal(t, StrategyFullOffset, result.Strategy)
}

func TestOptimizeFullPhaseOut(t *testing.T) {
	optimizer := NewOptimizer(nil)

	result := optimizer.Optimize([]model.StartupExpense{
		{Amount: 60000, IsStartupCost: true},
	}, 0)

	assert.InDelta(t, 60000.0, result.TotalStartupCosts, 0.001)
	assert.InDelta(t, 0.0, result.ImmediateDeduction, 0.001)
	assert.InDelta(t, 60000.0, result.AmortizableAmount, 0.001)
	assert.InDelta(t, 333.33, result.MonthlyAmortization, 0.001)
}

func TestOptimizePartialPhaseOut(t *testing.T) {
	optimizer := NewOptimizer(nil)

	result := optimizer.Optimize([]model.StartupExpense{
		{Amount: 52000, IsStartupCost: true},
	}, 0)

	// $2,000 over the $50,000 threshold trims the $5,000 allowance to $3,000.
	assert.InDelta(t, 3000.0, result.ImmediateDeduction, 0.001)
	assert.InDelta(t, 49000.0, result.AmortizableAmount, 0.001)
}

func TestOptimizeIgnoresNonStartupAndNegativeAmounts(t *testing.T) {
	optimizer := NewOptimizer(nil)

	result := optimizer.Optimize([]model.StartupExpense{
		{Amount: 1000, IsStartupCost: true},
		{Amount: 2500, IsStartupCost: false},
		{Amount: -400, IsStartupCost: true},
	}, 0)

	assert.InDelta(t, 1000.0, result.TotalStartupCosts, 0.001)
}

func TestOptimizeZeroTotal(t *testing.T) {
	optimizer := NewOptimizer(nil)

	result := optimizer.Optimize(nil, 5000)

	assert.Zero(t, result.TotalStartupCosts)
	assert.Zero(t, result.ImmediateDeduction)
	assert.Zero(t, result.AmortizableAmount)
	assert.Zero(t, result.MonthlyAmortization)
	assert.Zero(t, result.FirstYearTotalDeduction)
	assert.Empty(t, result.Strategy)
}

func TestOptimizeStrategies(t *testing.T) {
	optimizer := NewOptimizer(nil)
	expenses := []model.StartupExpense{{Amount: 10000, IsStartupCost: true}}

	tests := []struct {
		name    string
		revenue float64
		want    string
	}{
		{name: "no revenue", revenue: 0, want: StrategyLossLeader},
		{name: "revenue below costs", revenue: 4000, want: StrategyPartialOffset},
		{name: "revenue covers costs", revenue: 25000, want: StrategyFullOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := optimizer.Optimize(expenses, tt.revenue)
			assert.Equal(t, tt.want, result.Strategy)
		})
	}
}

func TestOptimizeWithPartialYear(t *testing.T) {
	optimizer := NewOptimizer(nil)

	result := optimizer.OptimizeWithMonths([]model.StartupExpense{
		{Amount: 23000, IsStartupCost: true},
	}, 0, 6)

	assert.InDelta(t, 5000.0, result.ImmediateDeduction, 0.001)
	assert.InDelta(t, 100.0, result.MonthlyAmortization, 0.001)
	assert.InDelta(t, 5600.0, result.FirstYearTotalDeduction, 0.001)
}
