package model

// BusinessProfile carries the self-reported facts about a business that feed
// complexity assessment. All fields are optional; the zero value is a valid
// empty profile.
type BusinessProfile struct {
	BusinessType   string  `json:"business_type,omitempty"`
	Industry       string  `json:"industry,omitempty"`
	AnnualRevenue  float64 `json:"annual_revenue,omitempty"`
	EmployeeCount  int     `json:"employee_count,omitempty"`
	HasEmployees   bool    `json:"has_employees,omitempty"`
	HasInventory   bool    `json:"has_inventory,omitempty"`
	HasHomeOffice  bool    `json:"has_home_office,omitempty"`
	MultipleStates bool    `json:"multiple_states,omitempty"`
}
