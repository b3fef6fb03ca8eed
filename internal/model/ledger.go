package model

import "time"

// LedgerEntry is one persisted expense in the smart ledger.
type LedgerEntry struct {
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	CategoryKey   string    `json:"category_key"`
	IRSCategory   string    `json:"irs_category"`
	ReceiptURL    string    `json:"receipt_url,omitempty"`
	Amount        float64   `json:"amount"`
	Confidence    float64   `json:"confidence"`
	TaxDeductible bool      `json:"tax_deductible"`
}
