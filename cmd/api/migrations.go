package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id UUID PRIMARY KEY,
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		date_of_birth DATE,
		gender VARCHAR(50),
		looking_for VARCHAR(50),
		preferred_age_range VARCHAR(50),
		preferred_age_min INTEGER,
		preferred_age_max INTEGER,
		location VARCHAR(255),
		interests TEXT[] DEFAULT '{}',
		relationship VARCHAR(50),
		orientation VARCHAR(50),
		smoking VARCHAR(50),
		alcohol VARCHAR(50),
		bio TEXT,
		profile_pic TEXT,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_user_profiles_active ON user_profiles(is_active, id)`,
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	for i, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	log.Printf("   - Applied %d migrations", len(migrations))
	return nil
}
