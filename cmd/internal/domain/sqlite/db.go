package sqlite

import (
	"metrocontratos/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database at dsn and migrates every table. Use
// "file::memory:" for a throwaway database.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// A single connection serializes writers and keeps in-memory databases
	// alive between queries.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	err = db.AutoMigrate(
		&entity.CompanySettings{},
		&entity.Client{},
		&entity.Contract{},
		&entity.RegistryCompany{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
