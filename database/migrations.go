package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/ForTheGlory21/Tasker/models"

	"gorm.io/gorm"
)

// optionalColumns lists task columns introduced after the first release.
// Database files written by older deployments predate them, so startup
// repairs each one additively. The schema only grows; nothing is dropped.
var optionalColumns = []struct {
	table      string
	definition string
}{
	{"tasks", "category varchar(255) DEFAULT ''"},
	{"tasks", "priority integer DEFAULT 0"},
	{"tasks", "description text DEFAULT ''"},
}

// RunMigrations runs database migrations to ensure tables are up to date
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Task{},
		&models.Comment{},
	)
	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	return repairOptionalColumns(db)
}

// repairOptionalColumns issues a best-effort ADD COLUMN per optional field.
// A failure meaning the column is already there is expected and swallowed;
// anything else is a real migration failure and surfaces.
func repairOptionalColumns(db *gorm.DB) error {
	for _, column := range optionalColumns {
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", column.table, column.definition)
		if err := db.Exec(stmt).Error; err != nil {
			if isDuplicateColumn(err) {
				continue
			}
			return fmt.Errorf("column repair on %s failed: %w", column.table, err)
		}
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate column") || strings.Contains(msg, "already exists")
}
