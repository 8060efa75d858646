package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"barbershop/internal/config"
	"barbershop/internal/database"
	"barbershop/internal/domain"
)

// Seeds a development database: schema, default barber and catalog, a
// full week of operating windows and one admin account.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM blackout_periods")
	db.Exec("DELETE FROM operating_windows")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM barbers")
	db.Exec("DELETE FROM admin_users")

	log.Println("Creating barbers...")
	barbers := []domain.Barber{
		{Name: "Carlos", IsActive: true},
		{Name: "Rafael", IsActive: true},
	}
	if err := db.Create(&barbers).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating services...")
	services := []domain.Service{
		{Name: "Corte", DurationMinutes: cfg.DefaultServiceDurationMinutes, PriceCents: 4500, IsActive: true},
		{Name: "Barba", DurationMinutes: cfg.DefaultServiceDurationMinutes, PriceCents: 3500, IsActive: true},
		{Name: "Corte + Barba", DurationMinutes: cfg.DefaultServiceDurationMinutes, PriceCents: 7000, IsActive: true},
	}
	if err := db.Create(&services).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating operating windows (Mon-Sat 09:00-19:00)...")
	for _, b := range barbers {
		for weekday := 1; weekday <= 6; weekday++ {
			w := domain.OperatingWindow{
				BarberID: b.ID,
				Weekday:  weekday,
				Open:     "09:00",
				Close:    "19:00",
			}
			if err := db.Create(&w).Error; err != nil {
				log.Fatal(err)
			}
		}
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&domain.AdminUser{
		Username:     "admin",
		PasswordHash: string(hash),
	}).Error; err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin /", password)

	log.Println("Seed complete.")
}
