package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/query"
	"go-jobboard-backend/internal/repository"
	"go-jobboard-backend/internal/repository/fixtures"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/repository/redisstore"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	pkgredis "go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/session"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

// collections is the backend-neutral view of a record store
type collections struct {
	jobs          domain.Collection[domain.Job]
	companies     domain.Collection[domain.Company]
	applications  domain.Collection[domain.Application]
	candidates    domain.Collection[domain.Candidate]
	notifications domain.Collection[domain.Notification]
}

// @title           Job Board API
// @version         1.0
// @description     Job search, company reviews, applications and notifications for a job board.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
func main() {
	if err := run(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func run() error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	for _, w := range cfg.Warnings {
		logger.Log.Warn(w)
	}
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "store", cfg.StoreDriver)

	// 3. Setup Record Store
	set, err := fixtures.Load(cfg.FixturesDir)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	checks := map[string]usecase.HealthCheck{}
	var store collections

	switch cfg.StoreDriver {
	case config.StorePostgres:
		dbPool, err := database.NewPostgresConnection(context.Background(), cfg.DBUrl)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer dbPool.Close()

		if store, err = openPostgres(dbPool, set); err != nil {
			return fmt.Errorf("prepare database: %w", err)
		}
		checks["database"] = dbPool.Ping
	default:
		mem, err := memory.NewStore(set, cfg.StoreLatency)
		if err != nil {
			return fmt.Errorf("seed memory store: %w", err)
		}
		store = collections{
			jobs:          mem.Jobs,
			companies:     mem.Companies,
			applications:  mem.Applications,
			candidates:    mem.Candidates,
			notifications: mem.Notifications,
		}
	}

	// 4. Setup Redis (optional)
	var (
		redisClient *goredis.Client
		voteGuard   domain.VoteGuard = memory.NewVoteGuard(cfg.SessionTTL)
	)
	if cfg.RedisURL != "" {
		err := pkgredis.Initialize(pkgredis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, falling back to in-memory votes and rate limits", "error", err)
		} else {
			defer pkgredis.Close()
			redisClient = pkgredis.Client()
			voteGuard = redisstore.NewVoteGuard(redisClient, cfg.SessionTTL)
			checks["redis"] = pkgredis.HealthCheck
		}
	}

	// 5. Setup Repositories
	jobRepo := repository.NewJobRepository(store.jobs, store.companies)
	companyRepo := repository.NewCompanyRepository(store.companies)
	applicationRepo := repository.NewApplicationRepository(store.applications, jobRepo, store.candidates)
	candidateRepo := repository.NewCandidateRepository(store.candidates)
	notificationRepo := repository.NewNotificationRepository(store.notifications)

	// 6. Setup UseCases
	validate := validation.New()
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, applicationRepo, query.NewSequencer(), validate, cfg.JobsPageSize,
		usecase.ApplyDefaults{CandidateID: cfg.DefaultCandidateID, ResumeVersion: cfg.DefaultResumeVersion})
	companyUC := usecase.NewCompanyUsecase(companyRepo, jobRepo, voteGuard, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo, validate)
	healthUC := usecase.NewHealthUsecase(checks)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:          jobUC,
		CompanyUC:      companyUC,
		ApplicationUC:  applicationUC,
		CandidateUC:    candidateUC,
		NotificationUC: notificationUC,
		HealthUC:       healthUC,
		Sessions:       session.NewManager(cfg.SessionSecret, cfg.SessionTTL),
		Redis:          redisClient,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}

// openPostgres creates the records table and seeds empty collections
func openPostgres(db *pgxpool.Pool, set *fixtures.Set) (collections, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.Migrate(ctx, db); err != nil {
		return collections{}, err
	}
	pg := postgres.NewStore(db)
	if err := pg.Seed(ctx, set); err != nil {
		return collections{}, err
	}
	return collections{
		jobs:          pg.Jobs,
		companies:     pg.Companies,
		applications:  pg.Applications,
		candidates:    pg.Candidates,
		notifications: pg.Notifications,
	}, nil
}
