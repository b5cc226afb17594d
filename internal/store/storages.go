package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages bundles every persistence component the services need.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	TokenBlocklist TokenBlocklist

	db    *DB
	redis *redis.Client
}

// NewStorages connects to the configured database, applies migrations, and
// wires the repositories. The token blocklist uses Redis when
// cfg.Redis.Address is set and process memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	s := &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}

	if cfg.Redis.Address == "" {
		log.Info().Str("func", "NewStorages").Msg("redis is not configured, revoked tokens are kept in memory")
		s.TokenBlocklist = NewMemoryTokenBlocklist()
		return s, nil
	}

	rdb, err := NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting redis")
		_ = db.Close()
		return nil, err
	}
	s.redis = rdb
	s.TokenBlocklist = NewRedisTokenBlocklist(rdb)

	return s, nil
}

// Ping implements [Pinger] by checking every backing store.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return err
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
	}
	return nil
}

// Close releases database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
