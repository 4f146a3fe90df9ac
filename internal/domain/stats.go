package domain

type ReportStats struct {
	Total         int64 `json:"total"`
	Pending       int64 `json:"pending"`
	Investigating int64 `json:"investigating"`
	Resolved      int64 `json:"resolved"`
	Recent        int64 `json:"recent"`
}
