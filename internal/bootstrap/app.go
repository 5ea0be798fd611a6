package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	authsvc "pitchmaker-backend/internal/auth"
	"pitchmaker-backend/internal/jobdescriptions"
	"pitchmaker-backend/internal/llm"
	"pitchmaker-backend/internal/llm/gemini"
	"pitchmaker-backend/internal/mailer"
	"pitchmaker-backend/internal/pitches"
	"pitchmaker-backend/internal/pitchhistory"
	"pitchmaker-backend/internal/profiles"
	"pitchmaker-backend/internal/shared/config"
	"pitchmaker-backend/internal/shared/server"
	"pitchmaker-backend/internal/shared/storage/db"
)

// App holds the wired application dependencies. Everything is exported so
// tests can swap individual pieces before building a router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ProfilesRepo     profiles.Repo
	JobDescRepo      jobdescriptions.Repo
	PitchesRepo      pitches.Repo
	PitchHistoryRepo pitchhistory.Repo

	Mailer mailer.Mailer

	ProfilesService     *profiles.Service
	JobDescService      *jobdescriptions.Service
	PitchesService      *pitches.Service
	PitchHistoryService *pitchhistory.Service

	ProfilesHandler     *profiles.Handler
	JobDescHandler      *jobdescriptions.Handler
	PitchesHandler      *pitches.Handler
	PitchHistoryHandler *pitchhistory.Handler
	MagicLink           *authsvc.MagicLinkService
	GoogleAuth          *authsvc.GoogleService
}

// Build wires repositories, services, handlers and the router from config.
// Without a reachable database in dev it falls back to in-memory stores.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Mailer: mailer.LogMailer{},
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		ProfilesHandler:     app.ProfilesHandler,
		JobDescHandler:      app.JobDescHandler,
		PitchesHandler:      app.PitchesHandler,
		PitchHistoryHandler: app.PitchHistoryHandler,
		MagicLink:           app.MagicLink,
		GoogleAuth:          app.GoogleAuth,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
		app.JobDescRepo = &jobdescriptions.PGRepo{DB: app.DB}
		app.PitchesRepo = &pitches.PGRepo{DB: app.DB}
		app.PitchHistoryRepo = &pitchhistory.PGRepo{DB: app.DB}
	} else {
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.JobDescRepo = jobdescriptions.NewMemoryRepo()
		app.PitchesRepo = pitches.NewMemoryRepo()
		app.PitchHistoryRepo = pitchhistory.NewMemoryRepo()
	}

	llmClient, err := buildLLM(app.Config)
	if err != nil {
		return err
	}

	app.ProfilesService = profiles.NewService(app.ProfilesRepo)
	app.JobDescService = &jobdescriptions.Service{Repo: app.JobDescRepo}
	app.PitchHistoryService = &pitchhistory.Service{Repo: app.PitchHistoryRepo}
	app.PitchesService = &pitches.Service{
		Repo:            app.PitchesRepo,
		LLM:             llmClient,
		Profiles:        app.ProfilesService,
		JobDescriptions: app.JobDescService,
		History:         app.PitchHistoryService,
	}

	app.ProfilesHandler = profiles.NewHandler(app.ProfilesService)
	app.JobDescHandler = jobdescriptions.NewHandler(app.JobDescService)
	app.PitchesHandler = pitches.NewHandler(app.PitchesService)
	app.PitchHistoryHandler = pitchhistory.NewHandler(app.PitchHistoryService)

	app.MagicLink = authsvc.NewMagicLinkService(
		app.ProfilesService,
		app.Mailer,
		app.Config.SiteURL,
		app.Config.UIRedirectURL,
		app.Config.MagicLinkTTL,
	)
	if app.Config.GoogleClientID != "" && app.Config.GoogleClientSecret != "" {
		app.GoogleAuth = authsvc.NewGoogleService(
			app.ProfilesService,
			app.Config.GoogleClientID,
			app.Config.GoogleClientSecret,
			app.Config.GoogleRedirectURL,
			app.Config.UIRedirectURL,
		)
	}
	return nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider == "gemini" {
		apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		if apiKey == "" {
			if isDevLike(cfg.Env) {
				log.Printf("bootstrap: GEMINI_API_KEY empty; pitch generation disabled")
				return llm.PlaceholderClient{}, nil
			}
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		return gemini.NewClient(apiKey, cfg.LLMModel)
	}
	return llm.PlaceholderClient{}, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
