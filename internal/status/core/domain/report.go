package domain

// StatusReport summarizes backend and data-store availability. Fields hold
// ready-to-display strings; the demo client renders them verbatim.
type StatusReport struct {
	Backend          string
	Database         string
	DatabaseURL      string
	DatabaseName     string
	ConnectionStatus string
	Collections      []string
}
