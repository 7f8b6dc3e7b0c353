package domain

type ReportingStats struct {
	UniqueReporters int64 `json:"unique_reporters"`
	TotalReports    int64 `json:"total_reports"`
	Minutes         int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // one day max
}
