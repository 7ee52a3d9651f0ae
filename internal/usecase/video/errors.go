package video

import (
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/usecase"
)

var (
	ErrDurationUnknown = fmt.Errorf("%w: could not determine video duration", usecase.ErrUpstream)
	ErrStagedMissing   = fmt.Errorf("%w: staged file is missing", usecase.ErrValidation)
)
