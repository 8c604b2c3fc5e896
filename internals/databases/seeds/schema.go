package seeds

import (
	"gorm.io/gorm"
)

// dropStatements tears tables down children-first so the FK graph
// never blocks a drop.
var dropStatements = []string{
	"DROP TABLE IF EXISTS viewing_history CASCADE",
	"DROP TABLE IF EXISTS wishlist CASCADE",
	"DROP TABLE IF EXISTS episodes CASCADE",
	"DROP TABLE IF EXISTS seasons CASCADE",
	"DROP TABLE IF EXISTS media_files CASCADE",
	"DROP TABLE IF EXISTS content_genres CASCADE",
	"DROP TABLE IF EXISTS genres CASCADE",
	"DROP TABLE IF EXISTS content CASCADE",
	"DROP TABLE IF EXISTS profiles CASCADE",
	"DROP TABLE IF EXISTS accounts CASCADE",
	"DROP TABLE IF EXISTS subscriptions CASCADE",
	"DROP TABLE IF EXISTS admins CASCADE",
}

// createStatements builds the schema parents-first.
var createStatements = []string{
	`CREATE TABLE subscriptions (
		subscription_id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		monthly_price DECIMAL(10, 2) NOT NULL,
		max_profiles INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE accounts (
		account_id SERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		subscription_id INTEGER REFERENCES subscriptions(subscription_id) ON DELETE SET NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE profiles (
		profile_id SERIAL PRIMARY KEY,
		account_id INTEGER NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		age_rating_pref VARCHAR(10) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE content (
		content_id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		type VARCHAR(10) NOT NULL CHECK (type IN ('Movie', 'Show')),
		description TEXT,
		release_year INTEGER,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE genres (
		genre_id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE
	)`,
	`CREATE TABLE content_genres (
		content_id INTEGER REFERENCES content(content_id) ON DELETE CASCADE,
		genre_id INTEGER REFERENCES genres(genre_id) ON DELETE CASCADE,
		PRIMARY KEY (content_id, genre_id)
	)`,
	`CREATE TABLE media_files (
		media_id SERIAL PRIMARY KEY,
		content_id INTEGER NOT NULL REFERENCES content(content_id) ON DELETE CASCADE,
		resolution VARCHAR(20) NOT NULL,
		language VARCHAR(50) NOT NULL,
		file_path VARCHAR(500) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE seasons (
		season_id SERIAL PRIMARY KEY,
		content_id INTEGER NOT NULL REFERENCES content(content_id) ON DELETE CASCADE,
		season_number INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (content_id, season_number)
	)`,
	`CREATE TABLE episodes (
		episode_id SERIAL PRIMARY KEY,
		season_id INTEGER NOT NULL REFERENCES seasons(season_id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		episode_number INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (season_id, episode_number)
	)`,
	`CREATE TABLE wishlist (
		profile_id INTEGER REFERENCES profiles(profile_id) ON DELETE CASCADE,
		content_id INTEGER REFERENCES content(content_id) ON DELETE CASCADE,
		added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (profile_id, content_id)
	)`,
	`CREATE TABLE viewing_history (
		profile_id INTEGER REFERENCES profiles(profile_id) ON DELETE CASCADE,
		content_id INTEGER REFERENCES content(content_id) ON DELETE CASCADE,
		last_timestamp INTEGER NOT NULL,
		watched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (profile_id, content_id)
	)`,
	`CREATE TABLE admins (
		admin_id SERIAL PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var indexStatements = []string{
	"CREATE INDEX idx_accounts_email ON accounts(email)",
	"CREATE INDEX idx_profiles_account_id ON profiles(account_id)",
	"CREATE INDEX idx_content_type ON content(type)",
	"CREATE INDEX idx_content_release_year ON content(release_year)",
	"CREATE INDEX idx_wishlist_profile_id ON wishlist(profile_id)",
	"CREATE INDEX idx_viewing_history_profile_id ON viewing_history(profile_id)",
}

// ResetSchema drops everything and rebuilds the tables from scratch.
func ResetSchema(db *gorm.DB) error {
	for _, stmt := range dropStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	for _, stmt := range createStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateIndexes adds the query-path indexes after the data is in.
func CreateIndexes(db *gorm.DB) error {
	for _, stmt := range indexStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
