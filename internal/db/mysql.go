package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxOpenConns = 10

// NewMySQL returns a connected GORM DB instance with a capped pool.
func NewMySQL(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)

	return gormDB, nil
}

// fulltextIndexes lists the MATCH...AGAINST indexes the list queries rely on.
// AutoMigrate does not create FULLTEXT indexes, so they are issued directly.
var fulltextIndexes = []struct {
	name    string
	table   string
	columns string
}{
	{"ft_devices_search", "devices", "name, model, brand"},
	{"ft_news_search", "news", "title, excerpt, content"},
	{"ft_issues_search", "issues", "title, content"},
	{"ft_coords_search", "coords", "name, note"},
}

// EnsureFulltextIndexes creates the FULLTEXT indexes if they are missing.
// Re-running against an already indexed schema is harmless.
func EnsureFulltextIndexes(gormDB *gorm.DB) error {
	for _, idx := range fulltextIndexes {
		var count int64
		err := gormDB.Raw(
			"SELECT COUNT(1) FROM information_schema.statistics WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?",
			idx.table, idx.name,
		).Scan(&count).Error
		if err != nil {
			return fmt.Errorf("check index %s: %w", idx.name, err)
		}
		if count > 0 {
			continue
		}
		stmt := fmt.Sprintf("CREATE FULLTEXT INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := gormDB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
	}
	return nil
}
