package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/abisgit/pillar-backend/internal/config"
	"github.com/abisgit/pillar-backend/internal/db"
	"github.com/abisgit/pillar-backend/internal/repository"
	"github.com/abisgit/pillar-backend/internal/service"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	AuthService        *service.AuthService
	GoalService        *service.GoalService
	TemplateService    *service.TemplateService
	ConsistencyService *service.ConsistencyService
	BalanceService     *service.BalanceService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	completionRepository := repository.NewCompletionRepository(database)
	templateRepository := repository.NewTemplateRepository(database)

	// Balance radar axes (env override or one completion axis per pillar)
	axes, err := service.ParseAxes(cfg.BalanceAxes)
	if err != nil {
		return nil, fmt.Errorf("invalid BALANCE_AXES: %v", err)
	}

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	goalService := service.NewGoalService(goalRepository, templateRepository)
	templateService := service.NewTemplateService(templateRepository)
	consistencyService := service.NewConsistencyService(completionRepository)
	balanceService := service.NewBalanceService(axes, goalRepository, completionRepository)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		AuthService:        authService,
		GoalService:        goalService,
		TemplateService:    templateService,
		ConsistencyService: consistencyService,
		BalanceService:     balanceService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
