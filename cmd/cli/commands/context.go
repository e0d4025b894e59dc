package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/internal/config"
	"github.com/scattered-vibes/shifterino/pkg/db"
)

// Migrator runs pending database migrations.
type Migrator interface {
	RunMigrations(ctx context.Context) error
}

// AppContext holds the application dependencies shared across all commands.
// Commands receive a getter rather than the context itself because the
// dependencies are only wired in the root command's PersistentPreRunE.
type AppContext struct {
	Cfg      *config.Config
	Database db.Store
	Migrator Migrator
	Logger   *zap.Logger
	Ctx      context.Context
}
