package assets

import "errors"

var (
	ErrInvalidBaseURL    = errors.New("invalid placeholder base url")
	ErrUnexpectedStatus  = errors.New("unexpected placeholder response status")
	ErrUnexpectedContent = errors.New("placeholder response is not a png image")
	ErrEmptyRelativePath = errors.New("empty media path")
)
