package port

import (
	"math"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// MaxPage keeps the offset within a signed 32-bit range.
	MaxPage = math.MaxInt32 / MaxPageLimit
)

// Page is an offset-based page request.
type Page struct {
	Page  int
	Limit int
}

// NewPage clamps page and limit into their accepted ranges.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Sort orders a listing by one field.
type Sort struct {
	Field string
	Desc  bool
}

type VideoFilter struct {
	Query   string
	OwnerID *uuid.UUID
	Sort    Sort
}
