package models

// HealthStatus contains health status of crucial units of the ledger.
type HealthStatus struct {
	Ledger   bool `json:"ledger"`
	Database bool `json:"database"`
}
