package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Layouts accepted for the optional due date and due time inputs.
const (
	DueDateLayout = "2006-01-02"
	DueTimeLayout = "15:04"

	// formattedDateLayout renders "Mon, Jan 2".
	formattedDateLayout = "Mon, Jan 2"
)

var (
	ErrInvalidPriority = errors.New("priority must be one of low, medium, high")
	ErrInvalidFilter   = errors.New("filter must be one of all, active, completed")
	ErrInvalidDueDate  = errors.New("due date must be formatted as YYYY-MM-DD")
	ErrInvalidDueTime  = errors.New("due time must be formatted as HH:MM")
)

// Priority represents the priority levels of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority in selector order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority parses user input case-insensitively. Empty input yields medium.
func ParsePriority(s string) (Priority, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// Filter selects which tasks a listing shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in tab order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter parses user input case-insensitively. Empty input yields all.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch Filter(s) {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted:
		return Filter(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Match reports whether t passes the filter. Unknown filters match nothing.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	}
	return false
}

// Task is a single to-do entry. The JSON shape is the persisted slot format.
type Task struct {
	ID            int64    `json:"id" yaml:"id" toml:"id" validate:"required,gt=0"`
	Text          string   `json:"text" yaml:"text" toml:"text" validate:"required"`
	Completed     bool     `json:"completed" yaml:"completed" toml:"completed"`
	Priority      Priority `json:"priority" yaml:"priority" toml:"priority" validate:"required,oneof=low medium high"`
	DueDate       string   `json:"dueDate" yaml:"dueDate,omitempty" toml:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueTime       string   `json:"dueTime" yaml:"dueTime,omitempty" toml:"dueTime,omitempty" validate:"omitempty,datetime=15:04"`
	FormattedDate string   `json:"formattedDate" yaml:"formattedDate,omitempty" toml:"formattedDate,omitempty"`
}

// FormatDue builds the display string for a due date and optional time, e.g.
// "Tue, Jan 16 at 09:30". An empty date yields an empty string.
func FormatDue(dueDate, dueTime string) (string, error) {
	if dueTime != "" {
		if _, err := time.Parse(DueTimeLayout, dueTime); err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidDueTime, dueTime)
		}
	}
	if dueDate == "" {
		return "", nil
	}
	d, err := time.Parse(DueDateLayout, dueDate)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDueDate, dueDate)
	}
	formatted := d.Format(formattedDateLayout)
	if dueTime != "" {
		formatted += " at " + dueTime
	}
	return formatted, nil
}

// global validator instance
var validate = validator.New()

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return errors.New(strings.Join(messages, "; "))
}
