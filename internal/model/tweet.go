package model

import (
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type Tweet struct {
	ID        uuid.UUID `json:"_id"`
	Content   string    `json:"content"`
	Owner     uuid.UUID `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Tweet) OwnerID() uuid.UUID { return t.Owner }
