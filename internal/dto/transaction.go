package dto

import "mime/multipart"

// CreateCategoryRequest is the payload of add-category
type CreateCategoryRequest struct {
	Category string `json:"category" form:"category" validate:"required,max=255"`
	Type     string `json:"type" form:"type" validate:"omitempty,category_type"`
}

// CreateTransactionRequest is the payload of add-transaction. It arrives as
// JSON or as a multipart form carrying attachments[] files.
type CreateTransactionRequest struct {
	Category        string      `json:"category" form:"category" validate:"max=255"`
	Amount          LooseString `json:"amount" form:"amount" validate:"required,money"`
	Type            string      `json:"type" form:"type" validate:"required,transaction_type"`
	TransactionDate string      `json:"transaction_date" form:"transaction_date" validate:"required,date_string"`
	PaymentMethod   string      `json:"payment_method" form:"payment_method" validate:"max=50"`
	Description     string      `json:"description" form:"description" validate:"max=1000"`

	Attachments []*multipart.FileHeader `json:"-" form:"-"`
}

// TransactionListQuery holds the filters of fetch-transactions and filter-transactions.
// The page number is read separately so a malformed value falls back to page 1.
type TransactionListQuery struct {
	Type      string `query:"type" json:"type"`
	StartDate string `query:"start_date" json:"start_date" validate:"omitempty,date_string"`
	EndDate   string `query:"end_date" json:"end_date" validate:"omitempty,date_string"`
}
