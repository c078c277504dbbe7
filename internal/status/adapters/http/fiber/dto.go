package fiber

// MessageResponse is a plain greeting payload.
type MessageResponse struct {
	Message string `json:"message" example:"Hello from the backend API!"`
}

// StatusReportResponse mirrors the probe report. The field names are part of
// the demo client contract, collections included, even though the backing
// store is relational.
type StatusReportResponse struct {
	Backend          string   `json:"backend" example:"✅ Running"`
	Database         string   `json:"database" example:"✅ Connected & Working"`
	DatabaseURL      string   `json:"database_url" example:"✅ Set"`
	DatabaseName     string   `json:"database_name" example:"❌ Not Set"`
	ConnectionStatus string   `json:"connection_status" example:"Connected"`
	Collections      []string `json:"collections"`
}
