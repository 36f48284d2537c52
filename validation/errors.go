package validation

import "errors"

var (
	ErrNotHEIF      = errors.New("not a HEIF container")
	ErrQualityRange = errors.New("quality must be between 1 and 100")
)
