package model

import (
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"_id"`
	Content   string    `json:"content"`
	Video     uuid.UUID `json:"video"`
	Owner     uuid.UUID `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Comment) OwnerID() uuid.UUID { return c.Owner }
