package model

import (
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type Playlist struct {
	ID          uuid.UUID   `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Videos      []uuid.UUID `json:"videos"`
	Owner       uuid.UUID   `json:"owner"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (p *Playlist) OwnerID() uuid.UUID { return p.Owner }
