package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createQuestionsTable creates the questions table with all indexes.
func createQuestionsTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "001_create_questions",
		Migrate: func(tx *gorm.DB) error {
			err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS questions (
					id CHAR(24) PRIMARY KEY,
					text TEXT NOT NULL,
					answer TEXT,
					options TEXT[],

					-- Facets, denormalized id + display name
					topic_id CHAR(24),
					topic_name VARCHAR(200),
					language_id CHAR(24),
					language_name VARCHAR(200),
					position_id CHAR(24),
					position_name VARCHAR(200),

					difficulty INTEGER DEFAULT 1,
					tags TEXT[],
					source VARCHAR(100),

					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);
			`).Error
			if err != nil {
				return err
			}

			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_questions_topic_id ON questions(topic_id);",
				"CREATE INDEX IF NOT EXISTS idx_questions_language_id ON questions(language_id);",
				"CREATE INDEX IF NOT EXISTS idx_questions_position_id ON questions(position_id);",
				"CREATE INDEX IF NOT EXISTS idx_questions_difficulty ON questions(difficulty);",
				"CREATE INDEX IF NOT EXISTS idx_questions_created_at ON questions(created_at DESC);",
				"CREATE INDEX IF NOT EXISTS idx_questions_tags ON questions USING GIN(tags);",
			}

			for _, idx := range indexes {
				if err := tx.Exec(idx).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DROP TABLE IF EXISTS questions;").Error
		},
	}
}
