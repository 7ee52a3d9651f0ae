package model

import "github.com/fhuszti/videotube-ms-go/internal/uuid"

// Owned is implemented by every resource that belongs to one principal.
type Owned interface {
	OwnerID() uuid.UUID
}
