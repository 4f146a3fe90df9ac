package domain

type SubmitReportRequest struct {
	PhotoPath    string  `validate:"required"`
	PhotoName    string  `validate:"required"`
	MimeType     string  `validate:"required"`
	SizeBytes    int64   `validate:"required,min=1"`
	Description  string  `validate:"required,notblank"`
	Lat          float64 `validate:"lat"`
	Lng          float64 `validate:"lng"`
	Address      string
	ReporterInfo string
}

// SubmittedReport is the public projection returned from POST /api/report.
type SubmittedReport struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Location    Point  `json:"location"`
	Timestamp   string `json:"timestamp"`
}

type NearbyQuery struct {
	Lat          float64 `validate:"lat"`
	Lng          float64 `validate:"lng"`
	RadiusMeters float64 `validate:"min=1,max=100000"`
}
