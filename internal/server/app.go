// Package server wires the griot server together: configuration, logging,
// the entity store, blob storage, the services and the gRPC transport.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/griotme/griot/internal/logging"
	"github.com/griotme/griot/internal/server/config"
	"github.com/griotme/griot/internal/server/notify"
	"github.com/griotme/griot/internal/server/repositories/memory"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
	"github.com/griotme/griot/internal/server/services"
	"github.com/griotme/griot/internal/server/storage"
	"github.com/griotme/griot/internal/server/validate"

	gs "github.com/griotme/griot/internal/server/grpc"
)

// logOutput is where the server writes its JSON log lines.
var logOutput io.Writer = os.Stdout

type App struct {
	config   *config.Config
	logger   logging.Logger
	services gs.Services
	db       *sql.DB
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(logOutput, level)

	app := &App{config: c, logger: logger}

	repos, err := app.initRepositories(ctx)
	if err != nil {
		return nil, err
	}

	blobs, err := app.initBlobStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	v := validate.New(c.PasswordMinLength)
	app.services = gs.Services{
		Users:      services.NewUserService(repos, v, notify.NewLogNotifier(logger), c, logger),
		Profiles:   services.NewProfileService(repos, v, logger),
		Accounts:   services.NewAccountService(repos, v, logger),
		Characters: services.NewCharacterService(repos, v, logger),
		Memories:   services.NewMemoryService(repos, v, blobs, logger),
		Videos:     services.NewVideoService(repos, v, blobs, logger),
	}

	return app, nil
}

func (app *App) initRepositories(ctx context.Context) (repomanager.RepositoryManager, error) {
	switch app.config.StorageDriver {
	case config.StorageDriverPostgres:
		db, err := repomanager.OpenPostgres(ctx, app.config.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db

		m := repomanager.NewPostgresRepositoryManager(db)
		if err := m.RunMigrations(ctx); err != nil {
			app.Close()
			return nil, fmt.Errorf("db migration error: %w", err)
		}
		return m, nil
	case config.StorageDriverMemory:
		app.logger.Warn(ctx, "using in-memory storage, data will not survive a restart")
		return memory.NewRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", app.config.StorageDriver)
	}
}

func (app *App) initBlobStore(ctx context.Context) (storage.BlobStore, error) {
	switch app.config.BlobDriver {
	case config.BlobDriverS3:
		s, err := storage.NewS3Store(ctx, storage.S3Options{
			Region:       app.config.S3Region,
			AccessKey:    app.config.S3RootUser,
			SecretKey:    app.config.S3RootPassword,
			BaseEndpoint: app.config.S3BaseEndpoint,
			Bucket:       app.config.S3Bucket,
			Expires:      app.config.PresignValidityDuration,
		})
		if err != nil {
			return nil, fmt.Errorf("blob storage init error: %w", err)
		}
		return s, nil
	case config.BlobDriverMemory:
		return storage.NewMemoryStore(app.config.S3Bucket), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %q", app.config.BlobDriver)
	}
}

// Close releases the database pool, if any.
func (app *App) Close() {
	if app.db != nil {
		_ = app.db.Close()
		app.db = nil
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or the process receives a stop signal.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.Close()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
