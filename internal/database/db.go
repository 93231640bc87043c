package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"nebulanotes/internal/config"
	"nebulanotes/internal/logger"
)

// EnsureDatabaseExists connects to the maintenance database with the admin
// account and creates cfg.Database.Name when it is missing.
func EnsureDatabaseExists(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) error {
	userInfo := url.UserPassword(cfg.AdminUser, cfg.AdminPassword)
	dsn := fmt.Sprintf(
		"postgres://%s@%s:%s/postgres?sslmode=disable",
		userInfo.String(),
		cfg.Host,
		cfg.Port,
	)

	log.Info("Checking if database exists", "database", cfg.Name)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.Name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		log.Info("Database already exists", "database", cfg.Name)
		return nil
	}

	// CREATE DATABASE cannot run inside a transaction
	quotedDBName := pgx.Identifier{cfg.Name}.Sanitize()
	if _, err := pool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", quotedDBName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Info("Database created", "database", cfg.Name)
	return nil
}

// DSN builds the postgres:// URL for the application account.
func DSN(cfg config.DatabaseConfig) string {
	userInfo := url.UserPassword(cfg.User, cfg.Password)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		cfg.Host,
		cfg.Port,
		url.PathEscape(cfg.Name),
	)
}

func Connect(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	log.Info("Connecting to database",
		"host", cfg.Host, "port", cfg.Port, "user", cfg.User, "database", cfg.Name)

	return ConnectDSN(ctx, DSN(cfg), cfg.MaxConns, cfg.MinConns)
}

func ConnectDSN(ctx context.Context, dsn string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	if maxConns > 0 {
		poolCfg.MaxConns = maxConns
	}
	if minConns > 0 {
		poolCfg.MinConns = minConns
	}
	poolCfg.MaxConnLifetime = 5 * time.Minute
	poolCfg.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// OpenGorm wraps the pgx pool in a gorm handle so repositories and migrations
// share one set of connections.
func OpenGorm(pool *pgxpool.Pool) (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return db, nil
}
