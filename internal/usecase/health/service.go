// Package health reports service readiness.
package health

import "context"

// Pinger checks a backing store's connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Counter reports catalog size.
type Counter interface {
	Count() int
}

// Status is the health check result.
type Status struct {
	Healthy  bool
	Database string
	Products int
}

// Service aggregates component health.
type Service struct {
	db      Pinger
	catalog Counter
}

// New creates a health service. db may be nil when no external store is
// configured.
func New(db Pinger, catalog Counter) *Service {
	return &Service{db: db, catalog: catalog}
}

// Check pings the backing store and reports catalog size.
func (s *Service) Check(ctx context.Context) Status {
	st := Status{Healthy: true, Database: "ok", Products: s.catalog.Count()}
	if s.db == nil {
		st.Database = "memory"
		return st
	}
	if err := s.db.Ping(ctx); err != nil {
		st.Healthy = false
		st.Database = "unreachable"
	}
	return st
}
