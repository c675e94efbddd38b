// Package worksheets provides internal work records.
// Worksheets are not numbered documents; they exist as task-like records
// whose pending/in-progress population feeds the dashboard's "active
// worksheets" metric.
package worksheets

import (
	"context"
	"time"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/entity"
)

// Status is the worksheet lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether the status is a known worksheet status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority of a worksheet.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is known.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Worksheet represents an internal work item.
type Worksheet struct {
	entity.BaseCatalog

	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`

	Status   Status   `db:"status" json:"status"`
	Priority Priority `db:"priority" json:"priority"`

	DueDate time.Time `db:"due_date" json:"dueDate"`

	// Progress of completion, 0..100
	Progress int `db:"progress" json:"progress"`

	Content string   `db:"content" json:"content,omitempty"`
	Tags    []string `db:"tags" json:"tags"`
}

// NewWorksheet creates a new pending worksheet.
func NewWorksheet(title, description string) *Worksheet {
	return &Worksheet{
		BaseCatalog: entity.NewBaseCatalog(),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		Priority:    PriorityMedium,
	}
}

// IsActive reports whether the worksheet counts toward the dashboard's
// active worksheets metric.
func (w *Worksheet) IsActive() bool {
	return w.Status == StatusPending || w.Status == StatusInProgress
}

// Validate implements entity.Validatable.
func (w *Worksheet) Validate(ctx context.Context) error {
	if w.Title == "" {
		return apperror.NewValidation("worksheet title is required").
			WithDetail("field", "title")
	}

	if w.Description == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}

	if w.DueDate.IsZero() {
		return apperror.NewValidation("due date is required").
			WithDetail("field", "dueDate")
	}

	if !w.Status.Valid() {
		return apperror.NewValidation("unknown worksheet status").
			WithDetail("field", "status").
			WithDetail("value", string(w.Status))
	}

	if !w.Priority.Valid() {
		return apperror.NewValidation("unknown worksheet priority").
			WithDetail("field", "priority").
			WithDetail("value", string(w.Priority))
	}

	if w.Progress < 0 || w.Progress > 100 {
		return apperror.NewValidation("progress must be between 0 and 100").
			WithDetail("field", "progress").
			WithDetail("value", w.Progress)
	}

	return nil
}

// Ensure interface compliance at compile time.
var _ entity.Validatable = (*Worksheet)(nil)
