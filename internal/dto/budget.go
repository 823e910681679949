package dto

// BudgetRequest is the payload of add-budget and update-budget. Dates and
// auto_reset stay strings so absent and unparsable values can be told apart.
type BudgetRequest struct {
	CategoryID string      `json:"category_id" form:"category_id" validate:"required,uuid"`
	Amount     LooseString `json:"amount" form:"amount" validate:"required,money"`
	Period     string      `json:"period" form:"period" validate:"omitempty,budget_period"`
	Purpose    string      `json:"purpose" form:"purpose" validate:"max=100"`
	StartDate  string      `json:"start_date" form:"start_date" validate:"omitempty,date_string"`
	EndDate    string      `json:"end_date" form:"end_date" validate:"omitempty,date_string"`
	AutoReset  LooseString `json:"auto_reset" form:"auto_reset"`
}
