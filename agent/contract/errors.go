package contract

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrConfiguration = errors.New("configuration error")
	ErrDelegate      = errors.New("delegate invoke failed")
	ErrRender        = errors.New("render failed")
)
