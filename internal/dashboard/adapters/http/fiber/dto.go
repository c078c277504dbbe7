package fiber

// KPIResponse is one headline metric with its period-over-period delta.
type KPIResponse struct {
	Label  string  `json:"label" example:"Total Users"`
	Value  float64 `json:"value" example:"23540"`
	Delta  float64 `json:"delta" example:"4.2"`
	Icon   string  `json:"icon" example:"Users"`
	Format string  `json:"format" example:"number"`
}

// TimeSeriesPointResponse is one day of users/sessions traffic.
type TimeSeriesPointResponse struct {
	Date     string `json:"date" example:"2025-06-14"`
	Users    int    `json:"users" example:"807"`
	Sessions int    `json:"sessions" example:"1210"`
}

// FeatureUsageResponse is one named usage counter.
type FeatureUsageResponse struct {
	Name  string `json:"name" example:"Feature C"`
	Count int    `json:"count" example:"1180"`
}

// TrafficSourceResponse is one traffic-origin share.
type TrafficSourceResponse struct {
	Name  string `json:"name" example:"Organic"`
	Value int    `json:"value" example:"5200"`
}

// ActivityRecordResponse is one synthetic recent-activity row.
type ActivityRecordResponse struct {
	Name   string `json:"name" example:"User 1"`
	Email  string `json:"email" example:"user1@example.com"`
	Date   string `json:"date" example:"2025-06-14"`
	Source string `json:"source" example:"Organic"`
	Status string `json:"status" example:"Activated"`
}

// DashboardResponse is the full sample dataset served to the dashboard
// client.
type DashboardResponse struct {
	Range       string                    `json:"range" example:"Last 30 days"`
	KPIs        []KPIResponse             `json:"kpis"`
	Series      []TimeSeriesPointResponse `json:"series"`
	Features    []FeatureUsageResponse    `json:"features"`
	Traffic     []TrafficSourceResponse   `json:"traffic"`
	Recent      []ActivityRecordResponse  `json:"recent"`
	LastUpdated string                    `json:"last_updated" example:"2025-06-15T12:00:00.000000Z"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty" example:"something went wrong"`
}
