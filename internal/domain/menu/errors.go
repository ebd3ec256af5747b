package menu

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDishNotFound     = errors.New("dish not found")
)
