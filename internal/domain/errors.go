package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrFeatureNotFound = errors.New("feature not found")
	ErrTaskNotFound    = errors.New("task not found")
)
