package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maxClearAttempts = 5

var (
	dbOnce sync.Once
	db     *Db
)

// Db is the in-memory SQLite store shared by every scenario. Tables are
// registered in migration order so budgets and transactions follow categories.
type Db struct {
	DbConn *gorm.DB
	schema string
	tables []string
	models map[string]any
}

// NewDb opens the shared in-memory database, attaches schema and migrates the
// given gorm models. Later calls return the same instance.
func NewDb(schema string, models ...any) *Db {
	dbOnce.Do(func() {
		db = open(schema, models)
	})
	return db
}

func open(schema string, models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// One connection keeps every query on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	d := &Db{
		DbConn: dbConn,
		schema: schema,
		models: make(map[string]any, len(models)),
	}
	for _, m := range models {
		table, err := d.tableName(m)
		if err != nil {
			panic(err)
		}
		d.tables = append(d.tables, table)
		d.models[table] = m
	}

	if err := d.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return d
}

// ClearDB empties every registered table. The first call attaches the schema
// and recreates the tables from the models.
func (d *Db) ClearDB() (err error) {
	for attempt := 1; attempt <= maxClearAttempts; attempt++ {
		if err = d.DbConn.Exec("ATTACH ':memory:' AS " + d.schema).Error; err != nil {
			if !strings.Contains(err.Error(), "is already in use") {
				return err
			}
		} else if err = d.migrate(); err != nil {
			continue
		}

		if err = d.truncate(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to clear database after %d attempts: %w", maxClearAttempts, err)
}

func (d *Db) migrate() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for _, table := range d.tables {
			if err := tx.Migrator().DropTable(table); err != nil {
				return err
			}
		}

		for _, table := range d.tables {
			model := d.models[table]
			if err := tx.AutoMigrate(model); err != nil {
				return fmt.Errorf("migrate %s: %w", table, err)
			}
			if !tx.Migrator().HasTable(model) {
				return fmt.Errorf("table %s was not created", table)
			}
		}
		return nil
	})
}

func (d *Db) truncate() error {
	for _, table := range d.tables {
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (d *Db) tableName(model any) (string, error) {
	stmt := &gorm.Statement{DB: d.DbConn}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}

// GetModel returns the model registered for table, for reflective row counts.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
