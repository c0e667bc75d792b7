package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// migrationStatements run in order at startup. Every statement is
// idempotent so repeated boots against the same database are safe.
var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) UNIQUE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(255),
		last_name VARCHAR(255),
		role VARCHAR(50) NOT NULL DEFAULT 'member',
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS folders (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		parent_id UUID REFERENCES folders(id) ON DELETE CASCADE,
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		design_mode VARCHAR(10) NOT NULL DEFAULT '2d',
		is_draft BOOLEAN NOT NULL DEFAULT TRUE,
		folder_id UUID REFERENCES folders(id) ON DELETE SET NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS project_data (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		data_json JSONB NOT NULL,
		version INTEGER NOT NULL,
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (project_id, version)
	)`,

	`CREATE TABLE IF NOT EXISTS pdf_backgrounds (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		file_url TEXT NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		page_count INTEGER NOT NULL DEFAULT 1,
		metadata JSONB,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS ai_suggestions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID REFERENCES projects(id) ON DELETE CASCADE,
		prompt TEXT NOT NULL,
		response JSONB,
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS ai_prompts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		company_id UUID REFERENCES companies(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		prompt_text TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,

	// Columns added after the initial schema shipped; guarded so older
	// databases upgrade in place.
	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'projects' AND column_name = 'design_mode'
		) THEN
			ALTER TABLE projects ADD COLUMN design_mode VARCHAR(10) NOT NULL DEFAULT '2d';
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'projects' AND column_name = 'is_draft'
		) THEN
			ALTER TABLE projects ADD COLUMN is_draft BOOLEAN NOT NULL DEFAULT TRUE;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'projects' AND column_name = 'folder_id'
		) THEN
			ALTER TABLE projects ADD COLUMN folder_id UUID REFERENCES folders(id) ON DELETE SET NULL;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'projects' AND column_name = 'status'
		) THEN
			ALTER TABLE projects ADD COLUMN status VARCHAR(20) NOT NULL DEFAULT 'active';
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'users' AND column_name = 'status'
		) THEN
			ALTER TABLE users ADD COLUMN status VARCHAR(20) NOT NULL DEFAULT 'active';
		END IF;
	END $$`,

	`CREATE INDEX IF NOT EXISTS idx_users_company_id ON users(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_company_id ON projects(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_folder_id ON projects(folder_id)`,
	`CREATE INDEX IF NOT EXISTS idx_project_data_project_id ON project_data(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_folders_company_id ON folders(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_pdf_backgrounds_project_id ON pdf_backgrounds(project_id)`,
}

// Migrate applies the schema to the database. Statements are run one at a
// time so a failure pinpoints the offending statement.
func Migrate(ctx context.Context, db *sql.DB, logger *logrus.Logger) error {
	for i, stmt := range migrationStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d failed: %w", i, err)
		}
	}
	logger.WithField("statements", len(migrationStatements)).Info("database schema up to date")
	return nil
}
