package complexity

import "github.com/fylr/fylr-engine/internal/model"

// Trigger is a keyword-driven complexity signal. A trigger fires at most once
// per assessment no matter how many descriptions match it.
type Trigger struct {
	Category       string
	Keywords       []string
	Recommendation string
	Weight         int
	Forms          []string
}

// ProfileRule is a complexity signal derived from the business profile rather
// than free text. Evaluated after the keyword triggers, in declaration order.
type ProfileRule struct {
	Trigger        string
	Category       string
	Recommendation string
	Weight         int
	Forms          []string
	Applies        func(model.BusinessProfile) bool
}

const revenueComplexityThreshold = 250000.0

// DefaultTriggers returns the built-in keyword trigger table. Order matters:
// flags are emitted in this order regardless of where keywords appear in the
// input, so assessments stay stable across input permutations.
func DefaultTriggers() []Trigger {
	return []Trigger{
		{
			Category:       "Payroll & Employment",
			Keywords:       []string{"employee", "employees", "payroll", "w-2", "w2"},
			Recommendation: "Enable Form 941 (Quarterly Payroll Tax), W-2 generation, and unemployment tax tracking",
			Weight:         10,
			Forms:          []string{"Form 941", "Form 940", "W-2", "W-3"},
		},
		{
			Category:       "International Tax",
			Keywords:       []string{"foreign", "international", "overseas", "abroad"},
			Recommendation: "Enable FBAR reporting and Form 8938 for foreign financial assets",
			Weight:         10,
			Forms:          []string{"FBAR", "Form 8938"},
		},
		{
			Category:       "Inventory Accounting",
			Keywords:       []string{"inventory", "stock", "merchandise", "goods for resale"},
			Recommendation: "Enable inventory tracking, COGS calculation, and method selection (FIFO/LIFO)",
			Weight:         10,
		},
		{
			Category:       "Digital Assets",
			Keywords:       []string{"cryptocurrency", "crypto", "bitcoin", "nft"},
			Recommendation: "Enable Form 8949 for crypto transactions and basis tracking",
			Weight:         10,
			Forms:          []string{"Form 8949"},
		},
		{
			Category:       "Complex Entity Structure",
			Keywords:       []string{"partnership", "multi-member", "s-corp", "s corp"},
			Recommendation: "Recommend upgrading to Premium tier for partnership/S-Corp support",
			Weight:         10,
		},
		{
			Category:       "Rental Real Estate",
			Keywords:       []string{"rental property", "real estate", "depreciation schedule"},
			Recommendation: "Consult with tax professional for complex situations",
			Weight:         10,
		},
	}
}

// DefaultProfileRules returns the built-in profile-derived trigger table.
func DefaultProfileRules() []ProfileRule {
	return []ProfileRule{
		{
			Trigger:        "has_employees",
			Category:       "Payroll & Employment",
			Recommendation: "Enable payroll tax modules and Form 941 preparation",
			Weight:         15,
			Forms:          []string{"Form 941", "Form 940", "W-2", "W-3"},
			Applies: func(p model.BusinessProfile) bool {
				return p.HasEmployees || p.EmployeeCount > 0
			},
		},
		{
			Trigger:        "has_inventory",
			Category:       "Inventory Accounting",
			Recommendation: "Enable COGS calculation and inventory valuation",
			Weight:         10,
			Applies: func(p model.BusinessProfile) bool {
				return p.HasInventory
			},
		},
		{
			Trigger:        "high_revenue",
			Category:       "High Revenue Business",
			Recommendation: "Consider quarterly estimated tax payments and S-Corp election",
			Weight:         5,
			Applies: func(p model.BusinessProfile) bool {
				return p.AnnualRevenue > revenueComplexityThreshold
			},
		},
	}
}
