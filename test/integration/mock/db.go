package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/debt-manager/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps an in-memory sqlite connection shared by the whole suite.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens (once) the shared in-memory database with the application
// schema migrated.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(&model.UserModel{}, &model.StatusModel{}, &model.DebtModel{}); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// ClearDB truncates the mutable tables between scenarios. The status
// table is reseeded by the scenario setup, so it is cleared too.
func (d *Db) ClearDB() error {
	for _, table := range []string{"debts", "users", "status"} {
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
