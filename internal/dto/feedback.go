package dto

import "mime/multipart"

type SubmitFeedbackRequest struct {
	Type        string `json:"type" form:"type" validate:"required,feedback_type"`
	Title       string `json:"title" form:"title" validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required"`

	Attachments []*multipart.FileHeader `json:"-" form:"-"`
}
