// Package gig detects gig economy platforms in expense and income text and
// applies their fee structures, 1099 reporting forms, and the IRS standard
// mileage rates drivers rely on.
package gig

import "strings"

// Platform describes a gig economy marketplace: how to spot it in free text,
// the typical cut it takes from gross earnings, and the 1099 form it issues.
type Platform struct {
	Key            string
	Name           string
	Keywords       []string
	ServiceFeeRate float64
	TaxForm        string
	Category       string
	IsDriver       bool
}

// Service fee rates reflect each platform's published cut. Upwork's sliding
// scale is approximated at its most common tier, Etsy's figure is the
// transaction fee, Airbnb's the host-side service fee.
var platforms = []Platform{
	{Key: "uber", Name: "Uber", Keywords: []string{"uber", "uber eats", "ubereats"}, ServiceFeeRate: 0.25, TaxForm: "1099-K", Category: "rideshare", IsDriver: true},
	{Key: "lyft", Name: "Lyft", Keywords: []string{"lyft"}, ServiceFeeRate: 0.25, TaxForm: "1099-K", Category: "rideshare", IsDriver: true},
	{Key: "doordash", Name: "DoorDash", Keywords: []string{"doordash", "door dash"}, ServiceFeeRate: 0.20, TaxForm: "1099-NEC", Category: "delivery", IsDriver: true},
	{Key: "grubhub", Name: "GrubHub", Keywords: []string{"grubhub", "grub hub"}, ServiceFeeRate: 0.20, TaxForm: "1099-NEC", Category: "delivery", IsDriver: true},
	{Key: "instacart", Name: "Instacart", Keywords: []string{"instacart", "insta cart"}, ServiceFeeRate: 0.15, TaxForm: "1099-NEC", Category: "delivery", IsDriver: true},
	{Key: "postmates", Name: "Postmates", Keywords: []string{"postmates", "post mates"}, ServiceFeeRate: 0.20, TaxForm: "1099-NEC", Category: "delivery", IsDriver: true},
	{Key: "amazon_flex", Name: "Amazon Flex", Keywords: []string{"amazon flex", "amazonflex"}, ServiceFeeRate: 0.10, TaxForm: "1099-NEC", Category: "delivery", IsDriver: true},
	{Key: "upwork", Name: "Upwork", Keywords: []string{"upwork"}, ServiceFeeRate: 0.10, TaxForm: "1099-NEC", Category: "freelance", IsDriver: false},
	{Key: "fiverr", Name: "Fiverr", Keywords: []string{"fiverr"}, ServiceFeeRate: 0.20, TaxForm: "1099-K", Category: "freelance", IsDriver: false},
	{Key: "etsy", Name: "Etsy", Keywords: []string{"etsy"}, ServiceFeeRate: 0.065, TaxForm: "1099-K", Category: "ecommerce", IsDriver: false},
	{Key: "airbnb", Name: "Airbnb", Keywords: []string{"airbnb", "air bnb"}, ServiceFeeRate: 0.03, TaxForm: "1099-K", Category: "rental", IsDriver: false},
	{Key: "taskrabbit", Name: "TaskRabbit", Keywords: []string{"taskrabbit", "task rabbit"}, ServiceFeeRate: 0.15, TaxForm: "1099-NEC", Category: "services", IsDriver: false},
	{Key: "rover", Name: "Rover", Keywords: []string{"rover"}, ServiceFeeRate: 0.20, TaxForm: "1099-K", Category: "services", IsDriver: false},
}

// IRS standard mileage rates per business mile. 2025 and 2026 are projected.
var mileageRates = map[int]float64{
	2024: 0.67,
	2025: 0.70,
	2026: 0.70,
}

const defaultMileageRate = 0.70

var incomeKeywords = []string{
	"made", "earned", "received", "income", "revenue", "payment", "paid me",
	"deposited", "got paid", "earnings", "tips", "collected",
}

// Platforms returns the platform table in declaration order.
func Platforms() []Platform {
	return platforms
}

// Detect returns the first platform whose keywords appear in the text.
func Detect(text string) (Platform, bool) {
	lower := strings.ToLower(text)
	for _, p := range platforms {
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				return p, true
			}
		}
	}
	return Platform{}, false
}

// IsIncome reports whether the text describes money coming in rather than a
// business expense.
func IsIncome(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// NetEarnings estimates take-home pay after the platform's service fee.
func (p Platform) NetEarnings(gross float64) float64 {
	if gross <= 0 {
		return 0
	}
	return gross * (1 - p.ServiceFeeRate)
}

// MileageRate returns the IRS standard mileage rate for the year, falling
// back to the latest known rate for years outside the table.
func MileageRate(year int) float64 {
	if rate, ok := mileageRates[year]; ok {
		return rate
	}
	return defaultMileageRate
}

// MileageDeduction computes the standard mileage deduction for a year.
func MileageDeduction(miles float64, year int) float64 {
	if miles <= 0 {
		return 0
	}
	return miles * MileageRate(year)
}
