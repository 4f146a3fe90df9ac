package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportNotification is what the moderation webhook receives for each
// accepted submission. Best-effort delivery, no ordering guarantee.
type ReportNotification struct {
	ReportID    uuid.UUID `json:"report_id"`
	Description string    `json:"description"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Address     string    `json:"address"`
	SubmittedAt time.Time `json:"submitted_at"`
}
