package database

import (
	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/reservations"
	"github.com/sasha-semenenko/planetarium-api-service/internal/sessions"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shows"
	"github.com/sasha-semenenko/planetarium-api-service/internal/themes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&themes.ShowTheme{},
		&shows.AstronomyShow{},
		&shows.ShowThemeAssignment{},
		&domes.PlanetariumDome{},
		&sessions.ShowSession{},
		&reservations.Reservation{},
		&reservations.Ticket{},
	)
}
