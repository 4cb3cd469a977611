package database

import (
	"testing"

	"github.com/ForTheGlory21/Tasker/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, RunMigrations(db))
	assert.NoError(t, RunMigrations(db))

	assert.True(t, db.Migrator().HasTable(&models.Task{}))
	assert.True(t, db.Migrator().HasTable(&models.Comment{}))
	assert.True(t, db.Migrator().HasColumn(&models.Task{}, "priority"))
	assert.True(t, db.Migrator().HasColumn(&models.Task{}, "description"))
}

func TestRepairAddsMissingColumns(t *testing.T) {
	db := openTestDB(t)

	// A database file written before the optional columns existed.
	err := db.Exec(`CREATE TABLE tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		due DATE NOT NULL,
		user TEXT NOT NULL,
		status TEXT NOT NULL
	)`).Error
	assert.NoError(t, err)

	assert.NoError(t, repairOptionalColumns(db))
	assert.True(t, db.Migrator().HasColumn(&models.Task{}, "category"))
	assert.True(t, db.Migrator().HasColumn(&models.Task{}, "priority"))
	assert.True(t, db.Migrator().HasColumn(&models.Task{}, "description"))

	// Running the repair again must swallow the duplicate-column failures.
	assert.NoError(t, repairOptionalColumns(db))
}

func TestRepairSurfacesRealFailures(t *testing.T) {
	db := openTestDB(t)

	// No tasks table at all: that is not a duplicate-column situation.
	assert.Error(t, repairOptionalColumns(db))
}
