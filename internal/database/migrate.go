package database

import (
	"gorm.io/gorm"

	"barbershop/internal/domain"
)

// Migrate brings the schema up to date. On PostgreSQL it also installs the
// exclusion constraint that makes double-booking impossible at commit
// time, no matter what the application-level check saw.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Barber{},
		&domain.Service{},
		&domain.Appointment{},
		&domain.BlackoutPeriod{},
		&domain.OperatingWindow{},
		&domain.AdminUser{},
	); err != nil {
		return err
	}

	if !IsPostgres(db) {
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}
	return db.Exec(`
DO $$ BEGIN
  ALTER TABLE appointments ADD CONSTRAINT idx_no_double_booking
    EXCLUDE USING gist (
      barber_id WITH =,
      tstzrange(start_time, end_time, '[)') WITH &&
    ) WHERE (status <> 'cancelled');
EXCEPTION WHEN duplicate_table OR duplicate_object THEN NULL;
END $$`).Error
}
