package database

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hashicorp/go-multierror"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Tastebook is the shared connection pool. Tests swap it for an
// in-memory database.
var Tastebook *sql.DB

//go:embed migrations/*.sql
var migrationFS embed.FS

func ConnectAndMigrate(url string) error {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	Tastebook = db
	return migrateUp(db)
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Tx runs fn inside a transaction, committing on success and rolling
// back on any error.
func Tx(fn func(tx *sql.Tx) error) error {
	tx, err := Tastebook.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Error("rollback failed")
			return multierror.Append(err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func ShutdownDatabase() error {
	var errs *multierror.Error
	if Tastebook != nil {
		errs = multierror.Append(errs, Tastebook.Close())
	}
	return errs.ErrorOrNil()
}
