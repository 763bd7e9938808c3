package services

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

const defaultPingTimeout = 3 * time.Second

type healthService struct {
	BaseService
	checker portsrepo.HealthChecker
	timeout time.Duration
}

// NewHealthService creates a health service pinging the given store.
func NewHealthService(checker portsrepo.HealthChecker) portssvc.HealthSvc {
	return &healthService{checker: checker, timeout: defaultPingTimeout}
}

// CheckHealth pings the store, failing with a storage-unavailable error.
func (s *healthService) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.checker.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Database ping failed")
		return apperrors.NewStorageUnavailableError(err)
	}
	return nil
}
