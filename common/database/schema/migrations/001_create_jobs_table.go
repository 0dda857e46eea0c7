package migrations

import "github.com/nickdelicto/ai-resume-builder-sub008/common/database/schema"

var CreateJobsTable = schema.Migration{
	Version:     1,
	Description: "Create jobs table",
	Up: `
		CREATE TABLE IF NOT EXISTS jobs (
			id UUID,
			source_id String,
			title String,
			employer_slug LowCardinality(String),
			employer_name String,
			state LowCardinality(String),
			city String,
			specialty LowCardinality(String),
			experience_level LowCardinality(String),
			job_type LowCardinality(String),
			remote Bool,
			sign_on_bonus Bool,
			description String,
			salary_min Nullable(Float64),
			salary_max Nullable(Float64),
			salary_type Nullable(String),
			salary_min_hourly Nullable(Float64),
			salary_max_hourly Nullable(Float64),
			salary_min_annual Nullable(Float64),
			salary_max_annual Nullable(Float64),
			source String,
			source_url String,
			posted_at DateTime,
			created_at DateTime,
			updated_at DateTime,
			raw_data String
		) ENGINE = ReplacingMergeTree(updated_at)
		ORDER BY (employer_slug, id)
		SETTINGS index_granularity = 8192
	`,
	Down: `DROP TABLE IF EXISTS jobs`,
}
