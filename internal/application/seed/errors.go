package seed

import "errors"

var (
	ErrInvalidGeneratorConfig = errors.New("invalid generator config")
	ErrGenerateDataset        = errors.New("failed to generate dataset")
	ErrWriteDataset           = errors.New("failed to write dataset")
	ErrInvalidRow             = errors.New("invalid row")
	ErrStoreUnavailable       = errors.New("store unavailable")
	ErrCancelled              = errors.New("cancelled by operator")
	ErrClearStore             = errors.New("failed to clear store")
	ErrValidateStore          = errors.New("failed to validate store")
	ErrExport                 = errors.New("failed to export store")
)
