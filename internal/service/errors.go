package service

import "errors"

var (
	ErrTenderNotFound = errors.New("tender not found")

	ErrTooManyKeywords = errors.New("preferences can have at most 5 keywords")
	ErrAlreadyVerified = errors.New("email is already registered and verified")
	ErrTokenNotFound   = errors.New("invalid verification token")
	ErrTokenExpired    = errors.New("verification token has expired")
)
