package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// ListEmployeesStore defines the database operations needed to list the roster
type ListEmployeesStore interface {
	ListActiveEmployees(ctx context.Context) ([]model.Employee, error)
}

// ListEmployees returns the active roster.
func ListEmployees(ctx context.Context, database ListEmployeesStore, logger *zap.Logger) ([]model.Employee, error) {
	employees, err := database.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	logger.Debug("Fetched roster", zap.Int("count", len(employees)))
	return employees, nil
}
