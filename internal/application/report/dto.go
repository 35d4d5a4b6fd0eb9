package report

// ReportQuery carries the date range of a sales report request. Dates are
// ISO 8601 days; both bounds are optional and default to the last 30 days.
type ReportQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	TopLimit  int    `form:"top_limit" binding:"omitempty,min=1,max=50"`
}
