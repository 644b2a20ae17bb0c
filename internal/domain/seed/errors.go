package seed

import "errors"

var (
	ErrUnknownEntity        = errors.New("unknown entity")
	ErrMissingHeaders       = errors.New("missing required headers")
	ErrSourceNotFound       = errors.New("source file not found")
	ErrReferenceNotFound    = errors.New("referenced record not found")
	ErrOwnerHasOrganization = errors.New("owner already has an organization")
	ErrEmptyVocabulary      = errors.New("empty vocabulary list")
)
