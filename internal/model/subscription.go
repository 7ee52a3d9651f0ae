package model

import (
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type Subscription struct {
	ID         uuid.UUID `json:"_id"`
	Channel    uuid.UUID `json:"channel"`
	Subscriber uuid.UUID `json:"subscriber"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *Subscription) OwnerID() uuid.UUID { return s.Subscriber }
