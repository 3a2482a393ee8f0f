package service

import "errors"

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidType     = errors.New("invalid patron type")
	ErrUpstream        = errors.New("upstream payment error")
	ErrInternal        = errors.New("internal error")
	ErrGalleryNotFound = errors.New("gallery not found")
)
