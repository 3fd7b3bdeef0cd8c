// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/config"
	"github.com/taskdeck/taskdeck/internal/infra/filekv"
	"github.com/taskdeck/taskdeck/internal/infra/gormkv"
	"github.com/taskdeck/taskdeck/internal/infra/logging"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/persist"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Store         *store.Store
	Notifier      *notify.Notifier
	Clock         domain.Clock
	IDs           domain.IDGenerator
	Logger        *logging.Logger
	ConfigLoader  *config.Loader
	ConfigManager *config.Manager
	AppConfig     *domain.Config
	DataDir       string
}

// New creates a new Container. dir is the working directory consulted
// for the local config override.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	dataDir := appConfig.Storage.Dir
	if dataDir == "" {
		dataDir = defaultDataDir()
	}

	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))
	for _, w := range appConfig.Warnings {
		logger.Warn("config warning", "warning", w)
	}

	clock := domain.RealClock{}
	notifier := notify.New(clock)

	// Select the persistence backend. The file backend tolerates an
	// unusable directory by degrading to an unavailable store; a broken
	// sqlite path is a startup error instead, since the user asked for
	// it explicitly.
	var kv domain.KV
	switch appConfig.Storage.Backend {
	case domain.BackendSQLite:
		path := appConfig.Storage.SQLitePath
		if path == "" {
			path = filepath.Join(dataDir, "tasks.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, err
		}
		db, err := gormkv.Open(path)
		if err != nil {
			return nil, err
		}
		kv = db
	default:
		kv = filekv.New(filepath.Join(dataDir, "collections"))
	}

	adapter := persist.New(kv, notifier, logger.Logger)

	return &Container{
		Store:         store.New(adapter),
		Notifier:      notifier,
		Clock:         clock,
		IDs:           domain.UUIDGenerator{},
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		AppConfig:     appConfig,
		DataDir:       dataDir,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(s *store.Store, notifier *notify.Notifier, clock domain.Clock, ids domain.IDGenerator, appConfig *domain.Config) *Container {
	return &Container{
		Store:     s,
		Notifier:  notifier,
		Clock:     clock,
		IDs:       ids,
		Logger:    logging.New("", logging.ParseLevel("")),
		AppConfig: appConfig,
	}
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.Logger != nil {
		return c.Logger.Close()
	}
	return nil
}

// defaultDataDir returns the default data directory.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskdeck")
}

// UseCase factory methods

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Store, c.IDs, c.Clock, c.Logger.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Store)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Store, c.Logger.Logger)
}

// SetStatusUseCase returns a new SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.Store, c.Logger.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, c.Logger.Logger)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Store)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Store, c.IDs, c.Clock, c.Logger.Logger)
}
