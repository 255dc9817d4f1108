package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidStatus    = errors.New("invalid status filter")
	ErrInvalidID        = errors.New("invalid identifier")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrNotInitialized   = errors.New("store not initialized (run 'taskdeck init' first)")
)
