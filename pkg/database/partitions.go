package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Readings are range-partitioned by timestamp, so AutoMigrate cannot create
// the table. MigrateReadings issues the DDL for the parent table, its
// composite indexes, and a rolling window of monthly partitions. Every
// statement is IF NOT EXISTS so the migration is safe to rerun.

const readingsTableDDL = `
CREATE TABLE IF NOT EXISTS readings (
	id uuid NOT NULL,
	meter_id uuid,
	transformer_id uuid,
	reading_type varchar(20) NOT NULL,
	value numeric(15,6) NOT NULL,
	timestamp timestamptz NOT NULL,
	is_estimated boolean NOT NULL DEFAULT false,
	confidence_score numeric(3,2),
	source_info varchar(200),
	metadata jsonb,
	created_at timestamptz NOT NULL,
	updated_at timestamptz NOT NULL,
	PRIMARY KEY (id, timestamp),
	CONSTRAINT chk_readings_single_source CHECK (
		(meter_id IS NOT NULL AND transformer_id IS NULL) OR
		(meter_id IS NULL AND transformer_id IS NOT NULL)
	)
) PARTITION BY RANGE (timestamp)`

var readingsIndexDDL = []string{
	`CREATE INDEX IF NOT EXISTS idx_readings_type_time ON readings (reading_type, timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_readings_meter_type_time ON readings (meter_id, reading_type, timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_readings_transformer_type_time ON readings (transformer_id, reading_type, timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_readings_time_desc ON readings (timestamp DESC)`,
}

// Months of partitions kept behind and ahead of the current month.
const (
	partitionMonthsBack  = 12
	partitionMonthsAhead = 3
)

// MigrateReadings creates the partitioned readings table, its indexes, and
// the partitions covering the rolling window around now.
func MigrateReadings(db *gorm.DB) error {
	if err := db.Exec(readingsTableDDL).Error; err != nil {
		return fmt.Errorf("failed to create readings table: %w", err)
	}

	for _, ddl := range readingsIndexDDL {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to create readings index: %w", err)
		}
	}

	now := time.Now().UTC()
	for offset := -partitionMonthsBack; offset <= partitionMonthsAhead; offset++ {
		if err := CreateMonthlyPartition(db, now.AddDate(0, offset, 0)); err != nil {
			return err
		}
	}

	return nil
}

// CreateMonthlyPartition creates the partition covering the month containing t.
func CreateMonthlyPartition(db *gorm.DB, t time.Time) error {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	name := fmt.Sprintf("readings_%04d_%02d", start.Year(), int(start.Month()))
	ddl := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s PARTITION OF readings FOR VALUES FROM ('%s') TO ('%s')`,
		name,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)

	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("failed to create partition %s: %w", name, err)
	}
	return nil
}
