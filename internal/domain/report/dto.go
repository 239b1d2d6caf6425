package report

// DailySummaryResponse is the dashboard-ready aggregate for one day.
// Averages are 12-hour labels, "-" when no record has the scan.
type DailySummaryResponse struct {
	Date            string                `json:"date"`
	Total           int                   `json:"total"`
	OnTime          int                   `json:"on_time"`
	Late            int                   `json:"late"`
	NotCheckedIn    int                   `json:"not_checked_in"`
	PendingCheckout int                   `json:"pending_checkout"`
	AverageTimeIn   string                `json:"average_time_in"`
	AverageTimeOut  string                `json:"average_time_out"`
	Strands         []StrandBreakdownItem `json:"strands"`
}

type StrandBreakdownItem struct {
	Strand string `json:"strand"`
	OnTime int    `json:"on_time"`
	Late   int    `json:"late"`
}
