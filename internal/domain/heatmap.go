package domain

// HeatBucket is one cell of the heatmap grid. Reports are grouped by
// their coordinates rounded to 3 decimal places (~110 m cells); Lat/Lng
// hold the cell centroid at that precision.
type HeatBucket struct {
	Lat       float64              `json:"lat"`
	Lng       float64              `json:"lng"`
	Count     int                  `json:"count"`
	Recent    int                  `json:"recent"`
	Intensity float64              `json:"intensity"`
	Statuses  map[ReportStatus]int `json:"statuses"`
}

type HeatmapResponse struct {
	Success        bool         `json:"success"`
	Data           []HeatBucket `json:"data"`
	TotalReports   int          `json:"totalReports"`
	TotalLocations int          `json:"totalLocations"`
}
