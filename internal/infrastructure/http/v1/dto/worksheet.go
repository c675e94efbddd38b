package dto

import (
	"time"

	"opsdesk/internal/domain/worksheets"
)

// CreateWorksheetRequest for creating worksheets.
type CreateWorksheetRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Priority    worksheets.Priority `json:"priority"`
	DueDate     time.Time           `json:"dueDate"`
	Content     string              `json:"content"`
	Tags        []string            `json:"tags"`
}

// ToEntity builds a new Worksheet from the request.
func (r CreateWorksheetRequest) ToEntity() *worksheets.Worksheet {
	w := worksheets.NewWorksheet(r.Title, r.Description)
	w.DueDate = r.DueDate
	w.Content = r.Content
	w.Tags = r.Tags
	if r.Priority != "" {
		w.Priority = r.Priority
	}
	return w
}

// UpdateWorksheetRequest for updating worksheets. Nil fields are left unchanged.
type UpdateWorksheetRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *worksheets.Status   `json:"status"`
	Priority    *worksheets.Priority `json:"priority"`
	DueDate     *time.Time           `json:"dueDate"`
	Progress    *int                 `json:"progress"`
	Content     *string              `json:"content"`
	Tags        *[]string            `json:"tags"`

	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo copies present fields onto the existing worksheet.
func (r UpdateWorksheetRequest) ApplyTo(w *worksheets.Worksheet) {
	if r.Title != nil {
		w.Title = *r.Title
	}
	if r.Description != nil {
		w.Description = *r.Description
	}
	if r.Status != nil {
		w.Status = *r.Status
	}
	if r.Priority != nil {
		w.Priority = *r.Priority
	}
	if r.DueDate != nil {
		w.DueDate = *r.DueDate
	}
	if r.Progress != nil {
		w.Progress = *r.Progress
	}
	if r.Content != nil {
		w.Content = *r.Content
	}
	if r.Tags != nil {
		w.Tags = *r.Tags
	}
	w.SetVersion(r.Version)
}
