package services

import (
	"context"

	"hotelops/store"
)

// StatusReporter is implemented by the document store.
type StatusReporter interface {
	Status(ctx context.Context) store.Status
}

// HealthReport is the operator-facing view of the backend and its datastore.
type HealthReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type HealthService struct {
	Store StatusReporter
}

func NewHealthService(reporter StatusReporter) *HealthService {
	return &HealthService{Store: reporter}
}

// Check never fails; store problems are described in the report.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	report := HealthReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	st := s.Store.Status(ctx)
	if st.Database != "" {
		name := st.Database
		report.DatabaseName = &name
	}
	if !st.Configured {
		return report
	}

	report.DatabaseURL = "✅ Set"
	switch {
	case !st.Reachable:
		report.Database = "❌ Error: " + st.Error
	case st.Error != "":
		report.ConnectionStatus = "Connected"
		report.Database = "⚠️  Connected but Error: " + st.Error
	default:
		report.ConnectionStatus = "Connected"
		report.Database = "✅ Connected & Working"
		report.Collections = st.Collections
	}
	return report
}
