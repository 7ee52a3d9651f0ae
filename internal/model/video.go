package model

import (
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// Video is the persisted record of one published video and its two remote artifacts.
type Video struct {
	ID                 uuid.UUID `json:"_id"`
	VideoFile          string    `json:"videoFile"`
	Thumbnail          string    `json:"thumbnail"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Owner              uuid.UUID `json:"owner"`
	Duration           float64   `json:"duration"`
	Views              int64     `json:"views"`
	IsPublished        bool      `json:"isPublished"`
	ThumbnailOptimised bool      `json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (v *Video) OwnerID() uuid.UUID { return v.Owner }

// VideoSortFields maps the accepted sortBy values to their column.
var VideoSortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}
