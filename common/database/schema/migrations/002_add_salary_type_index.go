package migrations

import "github.com/nickdelicto/ai-resume-builder-sub008/common/database/schema"

// The backfill scans for rows with a NULL salary_type.
var AddSalaryTypeIndex = schema.Migration{
	Version:     2,
	Description: "Add salary_type skipping index",
	Up:          `ALTER TABLE jobs ADD INDEX IF NOT EXISTS idx_salary_type salary_type TYPE set(3) GRANULARITY 4`,
	Down:        `ALTER TABLE jobs DROP INDEX IF EXISTS idx_salary_type`,
}

// All lists every migration in version order.
var All = []schema.Migration{
	CreateJobsTable,
	AddSalaryTypeIndex,
}
