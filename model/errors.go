package model

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrIdentityNotFound = errors.New("identity not found")
	ErrValidation       = errors.New("validation failed")
)
