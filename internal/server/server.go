package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"gorm.io/gorm"

	"nebulanotes/internal/config"
	"nebulanotes/internal/database"
	"nebulanotes/internal/handlers"
	"nebulanotes/internal/logger"
	"nebulanotes/internal/middlewares"
	"nebulanotes/internal/repositories"
	"nebulanotes/internal/routes"
	"nebulanotes/internal/services"
	"nebulanotes/internal/templates"
)

// NewServer connects the stores, builds the router and returns an http.Server
// ready to listen. cleanup closes the connections and must be called after
// the server has shut down.
func NewServer(ctx context.Context, cfg *config.Config, log *logger.Logger) (*http.Server, func(), error) {
	inj := BuildContainer(ctx, cfg, log)
	cleanup := func() {
		if err := inj.Shutdown(); err != nil {
			log.Warn("Failed to release resources", "error", err)
		}
	}

	router, err := do.Invoke[*gin.Engine](inj)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return server, cleanup, nil
}

// BuildContainer registers every component lazily. Nothing connects until
// the router is invoked.
func BuildContainer(ctx context.Context, cfg *config.Config, log *logger.Logger) *do.Injector {
	inj := do.New()

	// postgres
	do.Provide(inj, func(i *do.Injector) (*pgxPool, error) {
		if cfg.Database.AutoCreate {
			if err := database.EnsureDatabaseExists(ctx, cfg.Database, log); err != nil {
				return nil, err
			}
		}
		pool, err := database.Connect(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(ctx, pool, log); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info("Connected to database")
		return &pgxPool{Pool: pool}, nil
	})
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		pool := do.MustInvoke[*pgxPool](i)
		return database.OpenGorm(pool.Pool)
	})

	// redis
	do.Provide(inj, func(i *do.Injector) (*redisClient, error) {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
		}
		log.Info("Connected to Redis", "addr", cfg.Redis.Addr)
		return &redisClient{Client: rdb}, nil
	})

	// repositories
	do.Provide(inj, func(i *do.Injector) (*repositories.UserRepository, error) {
		return repositories.NewUserRepository(do.MustInvoke[*pgxPool](i).Pool), nil
	})
	do.Provide(inj, func(i *do.Injector) (*repositories.RedisRepository, error) {
		return repositories.NewRedisRepository(do.MustInvoke[*redisClient](i).Client), nil
	})
	do.Provide(inj, func(i *do.Injector) (*repositories.GalaxyRepository, error) {
		return repositories.NewGalaxyRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*repositories.ObjectTypeRepository, error) {
		return repositories.NewObjectTypeRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*repositories.AstronomicalObjectRepository, error) {
		return repositories.NewAstronomicalObjectRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*repositories.EventRepository, error) {
		return repositories.NewEventRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*repositories.ObservationRepository, error) {
		return repositories.NewObservationRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*repositories.ProfileRepository, error) {
		return repositories.NewProfileRepository(do.MustInvoke[*gorm.DB](i)), nil
	})

	// services
	do.Provide(inj, func(i *do.Injector) (*services.AuthService, error) {
		return services.NewAuthService(
			do.MustInvoke[*repositories.UserRepository](i),
			do.MustInvoke[*repositories.RedisRepository](i),
			cfg.Session.Secret,
			cfg.Session.TTL,
			log,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.GalaxyService, error) {
		return services.NewGalaxyService(do.MustInvoke[*repositories.GalaxyRepository](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.ObjectTypeService, error) {
		return services.NewObjectTypeService(do.MustInvoke[*repositories.ObjectTypeRepository](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.AstronomicalObjectService, error) {
		return services.NewAstronomicalObjectService(
			do.MustInvoke[*repositories.AstronomicalObjectRepository](i),
			do.MustInvoke[*repositories.ObjectTypeRepository](i),
			do.MustInvoke[*repositories.GalaxyRepository](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.EventService, error) {
		return services.NewEventService(
			do.MustInvoke[*repositories.EventRepository](i),
			do.MustInvoke[*repositories.AstronomicalObjectRepository](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.ObservationService, error) {
		return services.NewObservationService(
			do.MustInvoke[*repositories.ObservationRepository](i),
			do.MustInvoke[*repositories.AstronomicalObjectRepository](i),
			do.MustInvoke[*repositories.EventRepository](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.ProfileService, error) {
		return services.NewProfileService(
			do.MustInvoke[*repositories.ProfileRepository](i),
			do.MustInvoke[*repositories.AstronomicalObjectRepository](i),
		), nil
	})

	// router
	do.Provide(inj, func(i *do.Injector) (*gin.Engine, error) {
		return newRouter(i, cfg, log)
	})

	return inj
}

func newRouter(i *do.Injector, cfg *config.Config, log *logger.Logger) (*gin.Engine, error) {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	authService, err := do.Invoke[*services.AuthService](i)
	if err != nil {
		return nil, err
	}
	galaxies := do.MustInvoke[*services.GalaxyService](i)
	types := do.MustInvoke[*services.ObjectTypeService](i)
	objects := do.MustInvoke[*services.AstronomicalObjectService](i)
	events := do.MustInvoke[*services.EventService](i)
	observations := do.MustInvoke[*services.ObservationService](i)
	profiles := do.MustInvoke[*services.ProfileService](i)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(log))
	if len(cfg.CORS.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.Use(middlewares.LoadSession(authService, cfg.Session.CookieName, log))

	routes.RegisterRoutes(router, routes.Handlers{
		Auth: handlers.NewAuthHandler(authService, handlers.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.CookieSecure,
		}, log),
		Galaxy:      handlers.NewGalaxyHandler(galaxies, log),
		ObjectType:  handlers.NewObjectTypeHandler(types, log),
		Object:      handlers.NewAstronomicalObjectHandler(objects, types, galaxies, profiles, log),
		Event:       handlers.NewEventHandler(events, objects, log),
		Observation: handlers.NewObservationHandler(observations, objects, events, log),
		Profile:     handlers.NewProfileHandler(profiles, log),
		Health: handlers.NewHealthHandler(map[string]handlers.Pinger{
			"database": do.MustInvoke[*pgxPool](i).Pool,
			"redis":    do.MustInvoke[*repositories.RedisRepository](i),
		}, log),
	})

	return router, nil
}

// pgxPool and redisClient let the injector close connections on Shutdown.
type pgxPool struct {
	*pgxpool.Pool
}

func (p *pgxPool) Shutdown() error {
	p.Pool.Close()
	return nil
}

type redisClient struct {
	*redis.Client
}

func (r *redisClient) Shutdown() error {
	return r.Client.Close()
}
