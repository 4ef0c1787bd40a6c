package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/DavidHuie/gomigrate"
	_ "github.com/lib/pq"
	"github.com/neha-maurya01/SahaayAI/filter/classification"
	"github.com/neha-maurya01/SahaayAI/metrics/dbmetrics"
)

type PostgresStorageConnectionConfig struct {
	Uri          string
	MaxOpenConns int
	MaxIdleConns int
}

type PostgresStorageConfig struct {
	// Read/Write Database connection config
	RWDatabase *PostgresStorageConnectionConfig
	// Readonly Database connection config. If nil, the RW database will be used for RO operations
	RODatabase *PostgresStorageConnectionConfig
	// File path to the directory containing migrations
	MigrationsPath string
}

type PostgresStorage struct {
	db         *sql.DB
	readonlyDb *sql.DB

	checkInsert           *sql.Stmt
	checkSelect           *sql.Stmt
	checkDeleteBefore     *sql.Stmt
	checkCountsByCategory *sql.Stmt
}

func NewPostgresStorage(config *PostgresStorageConfig) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", config.RWDatabase.Uri)
	if err != nil {
		return nil, errors.Join(errors.New("failed to open read/write database"), err)
	}
	db.SetMaxOpenConns(config.RWDatabase.MaxOpenConns)
	db.SetMaxIdleConns(config.RWDatabase.MaxIdleConns)

	readonlyDb := db
	if config.RODatabase != nil {
		readonlyDb, err = sql.Open("postgres", config.RODatabase.Uri)
		if err != nil {
			_ = db.Close()
			return nil, errors.Join(errors.New("failed to open read-only database"), err)
		}
		readonlyDb.SetMaxOpenConns(config.RODatabase.MaxOpenConns)
		readonlyDb.SetMaxIdleConns(config.RODatabase.MaxIdleConns)
	}

	s := &PostgresStorage{
		db:         db,
		readonlyDb: readonlyDb,
	}
	if err = s.prepare(config.MigrationsPath); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to run migrations with path '%s'", config.MigrationsPath), err)
	}
	return s, nil
}

func (s *PostgresStorage) prepare(migrationsDir string) error {
	// Migrate first
	if migrator, err := gomigrate.NewMigratorWithLogger(s.db, gomigrate.Postgres{}, migrationsDir, log.Default()); err != nil {
		return err
	} else {
		if err = migrator.Migrate(); err != nil {
			return err
		}
	}

	// Now set up all the prepared statements
	var err error
	if s.checkInsert, err = s.db.Prepare("INSERT INTO checks (check_id, identifier_hash, language, category, forwarded, created_at) VALUES ($1, $2, $3, $4, $5, $6);"); err != nil {
		return err
	}
	if s.checkSelect, err = s.readonlyDb.Prepare("SELECT check_id, identifier_hash, language, category, forwarded, created_at FROM checks WHERE check_id = $1;"); err != nil {
		return err
	}
	if s.checkDeleteBefore, err = s.db.Prepare("DELETE FROM checks WHERE created_at < $1;"); err != nil {
		return err
	}
	if s.checkCountsByCategory, err = s.readonlyDb.Prepare("SELECT category, COUNT(*) FROM checks WHERE created_at >= $1 GROUP BY category;"); err != nil {
		return err
	}

	return nil
}

func (s *PostgresStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return err
	}
	if s.readonlyDb != nil && s.readonlyDb != s.db {
		if err := s.readonlyDb.Close(); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStorage) InsertCheck(ctx context.Context, check *StoredCheck) error {
	t := dbmetrics.StartSelfDatabaseTimer("InsertCheck")
	defer t.ObserveDuration()

	_, err := s.checkInsert.ExecContext(ctx, check.CheckId, check.IdentifierHash, check.Language, string(check.Category), check.Forwarded, check.CreatedAt.UTC())
	return err
}

func (s *PostgresStorage) GetCheck(ctx context.Context, checkId string) (*StoredCheck, error) {
	t := dbmetrics.StartSelfDatabaseTimer("GetCheck")
	defer t.ObserveDuration()

	check := &StoredCheck{}
	var category string
	if err := s.checkSelect.QueryRowContext(ctx, checkId).Scan(&check.CheckId, &check.IdentifierHash, &check.Language, &category, &check.Forwarded, &check.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	check.Category = classification.Classification(category)
	return check, nil
}

func (s *PostgresStorage) DeleteChecksBefore(ctx context.Context, before time.Time) (int64, error) {
	t := dbmetrics.StartSelfDatabaseTimer("DeleteChecksBefore")
	defer t.ObserveDuration()

	res, err := s.checkDeleteBefore.ExecContext(ctx, before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *PostgresStorage) CountChecksByCategory(ctx context.Context, since time.Time) (map[classification.Classification]int64, error) {
	t := dbmetrics.StartSelfDatabaseTimer("CountChecksByCategory")
	defer t.ObserveDuration()

	rows, err := s.checkCountsByCategory.QueryContext(ctx, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[classification.Classification]int64)
	for rows.Next() {
		var category string
		var count int64
		if err = rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[classification.Classification(category)] = count
	}
	return counts, rows.Err()
}
