package menu

import "errors"

// Sentinel errors for parsing user selections.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownSort     = errors.New("unknown sort option")
)
