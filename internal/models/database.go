package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Driver selects the database backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
)

// Drivers lists all supported database drivers.
var Drivers = []Driver{DriverSQLite, DriverMySQL, DriverPostgres}

type LedgerContext string

const (
	DBContextURL LedgerContext = "ledger-backend-url"
)

var pluralSuffix = regexp.MustCompile("ies$")

// Connect opens the database, migrates the schema and registers the
// callbacks translating database errors into the error kinds of this package.
func Connect(driver Driver, dsn string) (*gorm.DB, error) {
	if !slices.Contains(Drivers, driver) {
		return nil, fmt.Errorf("unsupported database driver '%s'", driver)
	}

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
		TranslateError: true,
	}

	var db *gorm.DB
	var err error
	switch driver {
	case DriverMySQL:
		db, err = gorm.Open(mysql.Open(dsn), config)
	case DriverPostgres:
		db, err = gorm.Open(postgres.Open(dsn), config)
	default:
		db, err = connectSQLite(dsn, config)
	}
	if err != nil {
		return nil, err
	}

	if driver != DriverSQLite {
		err = migrate(db)
		if err != nil {
			return nil, err
		}
	}

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// connectSQLite migrates with foreign keys disabled, then reconnects with
// foreign keys enforced so that deleting an account cascades.
func connectSQLite(dsn string, config *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}

	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s%s_pragma=foreign_keys(1)", dsn, separator)), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite allows a single writer. One connection prevents SQLITE_BUSY
	// and serializes all database transactions.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("ledger:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("ledger:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("ledger:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("ledger:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("ledger:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("ledger:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	return db.Callback().Delete().After("*").Register("ledger:after_delete_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		name = pluralSuffix.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	unique := errors.Is(db.Error, gorm.ErrDuplicatedKey) || strings.Contains(db.Error.Error(), "UNIQUE constraint failed")
	if !unique {
		return
	}

	switch db.Statement.Table {
	case "accounts":
		db.Error = ErrAccountNameNotUnique
	case "budget_aggregates":
		db.Error = ErrBudgetCategoryNotUnique
	default:
		db.Error = fmt.Errorf("%w: %s", ErrConstraintViolation, db.Error.Error())
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil || IsKnown(db.Error) {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) || errors.Is(db.Error, gorm.ErrForeignKeyViolated) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Account{}, Transaction{}, Budget{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
