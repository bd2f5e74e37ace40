package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrCarNotFound      = errors.New("car not found")
	ErrStaffNotFound    = errors.New("staff not found")
	ErrWorkTaskNotFound = errors.New("work task not found")
)
