package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"nebulanotes/internal/logger"
)

// Migrations are idempotent and run in order on every start.
var migrations = []string{
	createEnumTypes,
	createUsersTable,
	createUserProfilesTable,
	createGalaxiesTable,
	createObjectTypesTable,
	createAstronomicalObjectsTable,
	createEventsTable,
	createObservationsTable,
	createUserProfileFavoritesTable,
}

func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	for i, migration := range migrations {
		log.Debug("Running migration", "step", i+1, "total", len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info("All migrations completed successfully", "count", len(migrations))
	return nil
}

const createEnumTypes = `
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'galaxy_type_t') THEN
    CREATE TYPE galaxy_type_t AS ENUM ('Spiral', 'Elliptical', 'Irregular', 'Other');
  END IF;
END$$;
`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id BIGSERIAL PRIMARY KEY,
  username VARCHAR(150) NOT NULL UNIQUE,
  email TEXT NOT NULL,
  first_name VARCHAR(150) NOT NULL DEFAULT '',
  last_name VARCHAR(150) NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  last_login_at TIMESTAMP WITH TIME ZONE
);
`

const createUserProfilesTable = `
CREATE TABLE IF NOT EXISTS user_profiles (
  id BIGSERIAL PRIMARY KEY,
  user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createGalaxiesTable = `
CREATE TABLE IF NOT EXISTS galaxies (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(100) NOT NULL UNIQUE,
  type galaxy_type_t NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createObjectTypesTable = `
CREATE TABLE IF NOT EXISTS object_types (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(100) NOT NULL UNIQUE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createAstronomicalObjectsTable = `
CREATE TABLE IF NOT EXISTS astronomical_objects (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(100) NOT NULL UNIQUE,
  type_id BIGINT NOT NULL REFERENCES object_types(id) ON DELETE CASCADE,
  galaxy_id BIGINT REFERENCES galaxies(id) ON DELETE SET NULL,
  distance_from_earth DOUBLE PRECISION NOT NULL,
  discovery_year INT,
  description TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_astronomical_objects_type_id ON astronomical_objects(type_id);
CREATE INDEX IF NOT EXISTS idx_astronomical_objects_galaxy_id ON astronomical_objects(galaxy_id);
`

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(100) NOT NULL,
  date DATE NOT NULL,
  description TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);

CREATE TABLE IF NOT EXISTS event_related_objects (
  event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
  astronomical_object_id BIGINT NOT NULL REFERENCES astronomical_objects(id) ON DELETE CASCADE,
  PRIMARY KEY (event_id, astronomical_object_id)
);
`

const createObservationsTable = `
CREATE TABLE IF NOT EXISTS observations (
  id BIGSERIAL PRIMARY KEY,
  user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  astronomical_object_id BIGINT REFERENCES astronomical_objects(id) ON DELETE CASCADE,
  event_id BIGINT REFERENCES events(id) ON DELETE CASCADE,
  observation_date TIMESTAMP WITH TIME ZONE NOT NULL,
  location VARCHAR(255) NOT NULL DEFAULT '',
  notes TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_observations_user_id ON observations(user_id);
`

const createUserProfileFavoritesTable = `
CREATE TABLE IF NOT EXISTS user_profile_favorites (
  user_profile_id BIGINT NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
  astronomical_object_id BIGINT NOT NULL REFERENCES astronomical_objects(id) ON DELETE CASCADE,
  PRIMARY KEY (user_profile_id, astronomical_object_id)
);
`
