package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	StatusPending       ReportStatus = "pending"
	StatusInvestigating ReportStatus = "investigating"
	StatusResolved      ReportStatus = "resolved"
)

// Statuses lists every valid report status. Keep in sync with the
// CHECK constraint on the reports table.
func Statuses() []ReportStatus {
	return []ReportStatus{StatusPending, StatusInvestigating, StatusResolved}
}

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInvestigating, StatusResolved:
		return true
	}
	return false
}

// Point is a GeoJSON point, coordinates ordered [lng, lat].
type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

func NewPoint(lat, lng float64) Point {
	return Point{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

func (p Point) Lng() float64 { return p.Coordinates[0] }
func (p Point) Lat() float64 { return p.Coordinates[1] }

type Report struct {
	ID           uuid.UUID    `json:"id"`
	Description  string       `json:"description"`
	ImageURL     string       `json:"imageUrl"`
	Location     Point        `json:"location"`
	Address      string       `json:"address"`
	ReporterInfo string       `json:"reporterInfo"`
	Status       ReportStatus `json:"status"`
	SubmittedAt  time.Time    `json:"timestamp"`
}

// ReportLocation is the heatmap projection of a report: no photo URL,
// no free text, just what the bucketing needs.
type ReportLocation struct {
	Lat         float64
	Lng         float64
	Status      ReportStatus
	SubmittedAt time.Time
}
