package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-hours/internal/audit"
	"github.com/BruksfildServices01/restaurant-hours/internal/config"
	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
	"github.com/BruksfildServices01/restaurant-hours/internal/handlers"
	"github.com/BruksfildServices01/restaurant-hours/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/restaurant-hours/internal/infra/repository"
	"github.com/BruksfildServices01/restaurant-hours/internal/middleware"
	ucRestaurant "github.com/BruksfildServices01/restaurant-hours/internal/usecase/restaurant"
)

// Deps are the process singletons. DB and Pool may both be nil, which
// leaves only the memory source. A nil Redis disables caching.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	DB       *gorm.DB
	Pool     *pgxpool.Pool
	Redis    cache.Client
	Opener   ucRestaurant.RecordOpener
	Location *time.Location
}

// App exposes what cmd/api needs after the routes are mounted.
type App struct {
	Memory *infraRepo.RestaurantMemoryRepository
	Store  *infraRepo.RestaurantGormRepository
	Import *ucRestaurant.ImportRestaurants
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) *App {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID(d.Log))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	app := &App{
		Memory: infraRepo.NewRestaurantMemoryRepository(nil),
	}

	finders := map[string]openhours.Finder{
		ucRestaurant.SourceMemory: app.Memory,
	}

	var caches []*cache.Finder
	relational := func(name string, f openhours.Finder) {
		if d.Redis != nil {
			c := cache.NewFinder(f, d.Redis, name, d.Config.CacheTTL, d.Log)
			caches = append(caches, c)
			f = c
		}
		finders[name] = f
	}

	var store openhours.Store
	var auditor ucRestaurant.Auditor
	if d.DB != nil {
		app.Store = infraRepo.NewRestaurantGormRepository(d.DB)
		store = app.Store
		relational(ucRestaurant.SourceBuilder, app.Store)

		app.Audit = audit.NewDispatcher(audit.New(d.DB), d.Log)
		auditor = app.Audit
	}
	if d.Pool != nil {
		relational(ucRestaurant.SourceSQL, infraRepo.NewRestaurantSQLRepository(d.Pool))
	}

	// ======================================================
	// USE CASES
	// ======================================================
	listOpenUC := ucRestaurant.NewListOpenRestaurants(
		finders,
		d.Config.DefaultSource,
		d.Location,
		d.Log,
	)

	app.Import = ucRestaurant.NewImportRestaurants(
		d.Opener,
		d.Config.RestaurantsSource,
		store,
		auditor,
		d.Log,
		app.Memory.Replace,
		func([]openhours.Restaurant) {
			for _, c := range caches {
				c.Reset()
			}
		},
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	restaurantHandler := handlers.NewRestaurantHandler(
		listOpenUC,
		app.Import,
		app.Memory,
	)

	r.GET("/health", handlers.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/restaurants", restaurantHandler.List)
		api.GET("/restaurants/open", restaurantHandler.Open)
		api.GET("/restaurants/open/at", restaurantHandler.OpenAt)
		api.POST("/restaurants/import", restaurantHandler.Import)
	}

	return app
}
