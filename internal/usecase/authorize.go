package usecase

import (
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// Authorize reports whether principal may mutate record.
func Authorize(record model.Owned, principal uuid.UUID) bool {
	if record == nil || principal.IsZero() {
		return false
	}
	return record.OwnerID() == principal
}

// RequireOwner returns an ErrForbidden error naming the resource when Authorize fails.
func RequireOwner(record model.Owned, principal uuid.UUID, resource string) error {
	if !Authorize(record, principal) {
		return fmt.Errorf("%w: you are not the owner of this %s", ErrForbidden, resource)
	}
	return nil
}
