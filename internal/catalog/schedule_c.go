package catalog

import "github.com/fylr/fylr-engine/internal/model"

// FallbackCategoryKey is the catch-all category used when no keyword matches
// and when a classifier returns an unknown key.
const FallbackCategoryKey = "other"

// scheduleCCategories is the built-in Schedule C line table. Order matters:
// the keyword classifier resolves hit-count ties in favor of the category
// declared first.
var scheduleCCategories = []model.CategoryDefinition{
	{
		Key:                   "advertising",
		IRSCategoryName:       "Advertising and Marketing",
		ScheduleCLine:         "8",
		ScheduleCDescription:  "Advertising",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Fully deductible if ordinary and necessary for your business.",
		Keywords:              []string{"advertising", "marketing", "promotion", "google ads", "facebook ads", "billboard", "sponsorship", "ad campaign"},
	},
	{
		Key:                   "car_truck",
		IRSCategoryName:       "Car and Truck Expenses",
		ScheduleCLine:         "9",
		ScheduleCDescription:  "Car and truck expenses",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskMedium,
		IRSGuidance:           "Use the standard mileage rate or actual expenses, not both. Keep contemporaneous mileage logs.",
		Keywords:              []string{"mileage", "fuel", "gas station", "oil change", "car wash", "parking", "tolls", "vehicle maintenance"},
	},
	{
		Key:                   "commissions",
		IRSCategoryName:       "Commissions and Fees",
		ScheduleCLine:         "10",
		ScheduleCDescription:  "Commissions and fees",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Commissions paid to non-employees for sales or referrals are fully deductible.",
		Keywords:              []string{"commission", "referral fee", "finder's fee", "affiliate payout"},
	},
	{
		Key:                   "contract_labor",
		IRSCategoryName:       "Contract Labor",
		ScheduleCLine:         "11",
		ScheduleCDescription:  "Contract labor",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskMedium,
		IRSGuidance:           "Payments of $600 or more to a contractor require a 1099-NEC by January 31.",
		Keywords:              []string{"contractor", "freelancer", "subcontractor", "1099", "contract labor", "gig worker"},
	},
	{
		Key:                   "depletion",
		IRSCategoryName:       "Depletion",
		ScheduleCLine:         "12",
		ScheduleCDescription:  "Depletion",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Applies to natural resource extraction; most service businesses never use this line.",
		Keywords:              []string{"depletion", "mineral rights", "timber"},
	},
	{
		Key:                   "depreciation",
		IRSCategoryName:       "Section 179 Equipment Deduction",
		ScheduleCLine:         "13",
		ScheduleCDescription:  "Depreciation and section 179 expense deduction",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Equipment over $2,500 may qualify for Section 179 immediate expensing instead of multi-year depreciation.",
		Keywords:              []string{"laptop", "computer", "equipment", "machinery", "furniture", "camera", "workstation"},
	},
	{
		Key:                   "employee_benefit",
		IRSCategoryName:       "Employee Benefit Programs",
		ScheduleCLine:         "14",
		ScheduleCDescription:  "Employee benefit programs",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Health, accident, and group-term life plans for employees are deductible here, not on line 15.",
		Keywords:              []string{"employee benefit", "health plan", "group insurance", "wellness program"},
	},
	{
		Key:                   "insurance",
		IRSCategoryName:       "Business Insurance",
		ScheduleCLine:         "15",
		ScheduleCDescription:  "Insurance (other than health)",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Business liability, malpractice, and property insurance premiums are fully deductible.",
		Keywords:              []string{"insurance", "liability coverage", "premium", "errors and omissions"},
	},
	{
		Key:                   "interest_mortgage",
		IRSCategoryName:       "Mortgage Interest",
		ScheduleCLine:         "16a",
		ScheduleCDescription:  "Interest: Mortgage (paid to banks, etc.)",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Mortgage interest on business real property reported on Form 1098 goes here.",
		Keywords:              []string{"mortgage interest", "mortgage payment"},
	},
	{
		Key:                   "interest_other",
		IRSCategoryName:       "Other Business Interest",
		ScheduleCLine:         "16b",
		ScheduleCDescription:  "Interest: Other",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Interest on business loans and business credit cards is deductible; personal interest is not.",
		Keywords:              []string{"loan interest", "interest payment", "credit card interest", "line of credit"},
	},
	{
		Key:                   "legal_professional",
		IRSCategoryName:       "Legal and Professional Services",
		ScheduleCLine:         "17",
		ScheduleCDescription:  "Legal and professional services",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Professional fees for business purposes are fully deductible.",
		Keywords:              []string{"lawyer", "attorney", "accountant", "cpa", "consultant", "legal fees", "bookkeeper", "tax prep"},
	},
	{
		Key:                   "office_expense",
		IRSCategoryName:       "Office Expenses and Supplies",
		ScheduleCLine:         "18",
		ScheduleCDescription:  "Office expense",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Supplies and materials consumed in your office are fully deductible.",
		Keywords:              []string{"office supply", "office supplies", "printer", "paper", "pens", "desk", "staples", "postage", "toner"},
	},
	{
		Key:                   "pension_profit_sharing",
		IRSCategoryName:       "Pension and Profit-Sharing Plans",
		ScheduleCLine:         "19",
		ScheduleCDescription:  "Pension and profit-sharing plans",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Employer contributions to employee retirement plans are deducted here; your own go on Schedule 1.",
		Keywords:              []string{"pension", "401k", "sep ira", "profit-sharing", "retirement plan"},
	},
	{
		Key:                   "rent_lease_vehicles",
		IRSCategoryName:       "Equipment Rent and Lease",
		ScheduleCLine:         "20a",
		ScheduleCDescription:  "Rent or lease: Vehicles, machinery, and equipment",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Lease payments on business vehicles and machinery are deductible; inclusion amounts may apply to luxury vehicles.",
		Keywords:              []string{"equipment rental", "equipment lease", "vehicle lease", "machine rental"},
	},
	{
		Key:                   "rent_lease_property",
		IRSCategoryName:       "Rent and Lease Payments",
		ScheduleCLine:         "20b",
		ScheduleCDescription:  "Rent or lease: Other business property",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Rent for offices, storefronts, and storage used for business is fully deductible.",
		Keywords:              []string{"rent", "lease", "office space", "coworking", "storage unit"},
	},
	{
		Key:                   "repairs_maintenance",
		IRSCategoryName:       "Repairs and Maintenance",
		ScheduleCLine:         "21",
		ScheduleCDescription:  "Repairs and maintenance",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Repairs that keep property in operating condition are deductible; improvements must be capitalized.",
		Keywords:              []string{"repair", "maintenance", "servicing"},
	},
	{
		Key:                   "supplies",
		IRSCategoryName:       "Business Supplies",
		ScheduleCLine:         "22",
		ScheduleCDescription:  "Supplies (not included in Part III)",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Incidental supplies and materials consumed during the year are fully deductible.",
		Keywords:              []string{"supplies", "supply", "materials", "raw material"},
	},
	{
		Key:                   "taxes_licenses",
		IRSCategoryName:       "Taxes and Licenses",
		ScheduleCLine:         "23",
		ScheduleCDescription:  "Taxes and licenses",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Business licenses, permits, and employer payroll taxes are deductible; federal income tax is not.",
		Keywords:              []string{"license", "permit", "business tax", "registration fee"},
	},
	{
		Key:                   "travel",
		IRSCategoryName:       "Business Travel",
		ScheduleCLine:         "24a",
		ScheduleCDescription:  "Travel",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Travel expenses must be ordinary, necessary, and away from your tax home.",
		Keywords:              []string{"flight", "hotel", "airfare", "lodging", "conference", "airline", "travel"},
	},
	{
		Key:                   "meals",
		IRSCategoryName:       "Business Meals (50% Deductible)",
		ScheduleCLine:         "24b",
		ScheduleCDescription:  "Deductible meals",
		DeductionPercentage:   50,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskMedium,
		IRSGuidance:           "Business meals are 50% deductible. Must be ordinary and necessary, not lavish or extravagant.",
		Keywords:              []string{"meal", "lunch", "dinner", "restaurant", "client dinner", "food"},
	},
	{
		Key:                   "utilities",
		IRSCategoryName:       "Business Utilities",
		ScheduleCLine:         "25",
		ScheduleCDescription:  "Utilities",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "Utilities for business premises are fully deductible; home utilities belong under the home office rules.",
		Keywords:              []string{"electric", "electricity", "power bill", "internet", "phone bill", "cell phone", "water bill", "gas bill", "utility"},
	},
	{
		Key:                   "wages",
		IRSCategoryName:       "Employee Wages",
		ScheduleCLine:         "26",
		ScheduleCDescription:  "Wages (less employment credits)",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskMedium,
		IRSGuidance:           "Gross wages paid to W-2 employees are deductible; owner draws are not wages.",
		Keywords:              []string{"wages", "salary", "payroll"},
	},
	{
		Key:                   "other",
		IRSCategoryName:       "Other Business Expenses",
		ScheduleCLine:         "27",
		ScheduleCDescription:  "Other expenses",
		DeductionPercentage:   100,
		RequiresDocumentation: true,
		AuditRisk:             model.AuditRiskLow,
		IRSGuidance:           "General business expense - ensure ordinary and necessary.",
		Keywords:              []string{"miscellaneous", "other expense"},
	},
}

// startupCostKeywords flag descriptions tied to business formation and
// pre-opening spend, which follow the IRC section 195 amortization rules.
var startupCostKeywords = []string{
	"startup", "start-up", "start up", "initial", "formation",
	"incorporation", "llc filing", "legal fees for formation",
	"organizational costs", "pre-opening", "launch",
}

// Default returns the built-in Schedule C catalog. It panics only if the
// built-in table violates its own invariants, which the tests guard against.
func Default() *Catalog {
	c, err := New(scheduleCCategories, FallbackCategoryKey, startupCostKeywords)
	if err != nil {
		panic(err)
	}
	return c
}
