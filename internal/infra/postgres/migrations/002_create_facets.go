package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createFacetTables creates the three facet directory tables. They
// share a shape; name lookups are case-insensitive, hence the
// LOWER(name) indexes.
func createFacetTables() *gormigrate.Migration {
	tables := []string{"topics", "languages", "positions"}

	return &gormigrate.Migration{
		ID: "002_create_facets",
		Migrate: func(tx *gorm.DB) error {
			for _, table := range tables {
				err := tx.Exec(`
					CREATE TABLE IF NOT EXISTS ` + table + ` (
						id CHAR(24) PRIMARY KEY,
						name VARCHAR(200) NOT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
				`).Error
				if err != nil {
					return err
				}

				err = tx.Exec(
					"CREATE INDEX IF NOT EXISTS idx_" + table + "_lower_name ON " + table + " (LOWER(name));",
				).Error
				if err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			for _, table := range tables {
				if err := tx.Exec("DROP TABLE IF EXISTS " + table + ";").Error; err != nil {
					return err
				}
			}

			return nil
		},
	}
}
