package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "bb-backend-url"
)

// SQLite primary result codes for lock contention
const (
	sqliteBusy   = 5
	sqliteLocked = 6
)

// Connect opens the SQLite database, migrates the schema and
// configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Migration runs with foreign keys disabled since sqlite does not
	// support ALTER COLUMN. Tables are copied to a temporary table,
	// then dropped and recreated.
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled. The busy timeout lets
	// sqlite wait for locks held by other processes before failing.
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all writes of this process
	// and prevents SQLITE_BUSY between our own connections.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "budget_buddy:after_query", queryCallback},
		{db.Callback().Query().After("*"), "budget_buddy:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "budget_buddy:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "budget_buddy:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "budget_buddy:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "budget_buddy:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "budget_buddy:after_delete_general", generalCallback},
		{db.Callback().Row().After("*"), "budget_buddy:after_row_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	err = seedCategories(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

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

	constraints := map[string]error{
		"UNIQUE constraint failed: users.email":                         ErrEmailNotUnique,
		"UNIQUE constraint failed: accounts.user_id, accounts.name":     ErrAccountNameNotUnique,
		"UNIQUE constraint failed: categories.user_id, categories.name": ErrCategoryNameNotUnique,
		"CHECK constraint failed: account_destination_different":        ErrTransferSameAccount,
	}

	for constraint, err := range constraints {
		if strings.Contains(db.Error.Error(), constraint) {
			db.Error = err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(db.Error, &sqliteErr) {
		code := sqliteErr.Code() & 0xff
		if code == sqliteBusy || code == sqliteLocked {
			log.Warn().Msgf("%T: %v", db.Error, db.Error.Error())
			db.Error = ErrDatabaseBusy
			return
		}
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || sqliteErr != nil {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(User{}, Account{}, Category{}, CategoryRule{}, ScheduledPayment{}, Transaction{}, Alert{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
