package dto

type MarkAsReadRequest struct {
	ID string `json:"id" form:"id" validate:"required,uuid"`
}

type MarkAllAsReadResponse struct {
	Updated int64 `json:"updated"`
}
