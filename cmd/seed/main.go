package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/reservations"
	"github.com/sasha-semenenko/planetarium-api-service/internal/sessions"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/config"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/database"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shows"
	"github.com/sasha-semenenko/planetarium-api-service/internal/themes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Planetarium Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"tickets",
		"reservations",
		"show_sessions",
		"show_theme_assignments",
		"astronomy_shows",
		"show_themes",
		"planetarium_domes",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	_ = userIDs

	themeList, err := s.SeedThemes()
	if err != nil {
		return fmt.Errorf("failed to seed themes: %w", err)
	}

	domeIDs, err := s.SeedDomes()
	if err != nil {
		return fmt.Errorf("failed to seed domes: %w", err)
	}

	showIDs, err := s.SeedShows(themeList)
	if err != nil {
		return fmt.Errorf("failed to seed shows: %w", err)
	}

	if err := s.SeedSessions(showIDs, domeIDs); err != nil {
		return fmt.Errorf("failed to seed sessions: %w", err)
	}

	// Fresh cache state for listing endpoints
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates 1 admin and 2 regular users, all with password "qwerty".
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@planetarium.local", users.RoleAdmin},
		{"user1", "Sasha", "Semenenko", "sasha@planetarium.local", users.RoleUser},
		{"user2", "Olena", "Kovalenko", "olena@planetarium.local", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

func (s *Seeder) SeedThemes() ([]themes.ShowTheme, error) {
	fmt.Println("  🔭 Seeding show themes...")

	names := []string{
		"Solar System",
		"Deep Space",
		"Black Holes",
		"Constellations",
		"Space Exploration",
	}

	var created []themes.ShowTheme
	for _, name := range names {
		theme := themes.ShowTheme{
			ID:   uuid.New(),
			Name: name,
		}

		if err := s.db.PostgreSQL.Create(&theme).Error; err != nil {
			return nil, fmt.Errorf("failed to create theme %s: %w", name, err)
		}

		created = append(created, theme)
		fmt.Printf("    ✅ Created theme: %s\n", theme.Name)
	}

	return created, nil
}

func (s *Seeder) SeedDomes() ([]uuid.UUID, error) {
	fmt.Println("  🏟️ Seeding planetarium domes...")

	domesData := []struct {
		name        string
		rows        int
		seatsPerRow int
	}{
		{"Main Dome", 10, 15},
		{"Small Dome", 2, 3},
		{"IMAX Dome", 12, 20},
	}

	var domeIDs []uuid.UUID
	for _, domeData := range domesData {
		dome := domes.PlanetariumDome{
			ID:          uuid.New(),
			Name:        domeData.name,
			Rows:        domeData.rows,
			SeatsPerRow: domeData.seatsPerRow,
		}

		if err := s.db.PostgreSQL.Create(&dome).Error; err != nil {
			return nil, fmt.Errorf("failed to create dome %s: %w", dome.Name, err)
		}

		domeIDs = append(domeIDs, dome.ID)
		fmt.Printf("    ✅ Created dome: %s (capacity %d)\n", dome.Name, dome.Capacity())
	}

	return domeIDs, nil
}

func (s *Seeder) SeedShows(themeList []themes.ShowTheme) ([]uuid.UUID, error) {
	fmt.Println("  🪐 Seeding astronomy shows...")

	showsData := []struct {
		title       string
		description string
		themeIdx    []int
	}{
		{
			title:       "Journey Through the Solar System",
			description: "A guided tour past every planet, from Mercury's craters to Neptune's storms.",
			themeIdx:    []int{0, 4},
		},
		{
			title:       "Edge of the Event Horizon",
			description: "What happens at the boundary of a black hole, rendered from real observation data.",
			themeIdx:    []int{1, 2},
		},
		{
			title:       "Stories in the Stars",
			description: "Constellation myths from cultures around the world, projected across the whole dome.",
			themeIdx:    []int{3},
		},
		{
			title:       "One Small Step",
			description: "The history and future of human space flight.",
			themeIdx:    []int{4},
		},
	}

	var showIDs []uuid.UUID
	for _, showData := range showsData {
		var showThemes []themes.ShowTheme
		for _, idx := range showData.themeIdx {
			if idx < len(themeList) {
				showThemes = append(showThemes, themeList[idx])
			}
		}

		show := shows.AstronomyShow{
			ID:          uuid.New(),
			Title:       showData.title,
			Description: showData.description,
			Themes:      showThemes,
		}

		if err := s.db.PostgreSQL.Create(&show).Error; err != nil {
			return nil, fmt.Errorf("failed to create show %s: %w", show.Title, err)
		}

		showIDs = append(showIDs, show.ID)
		fmt.Printf("    ✅ Created show: %s\n", show.Title)
	}

	return showIDs, nil
}

func (s *Seeder) SeedSessions(showIDs, domeIDs []uuid.UUID) error {
	fmt.Println("  🎬 Seeding show sessions...")

	for i, showID := range showIDs {
		session := sessions.ShowSession{
			ID:       uuid.New(),
			ShowID:   showID,
			DomeID:   domeIDs[i%len(domeIDs)],
			ShowTime: time.Now().AddDate(0, 0, (i+1)*7),
		}

		if err := s.db.PostgreSQL.Create(&session).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		fmt.Printf("    ✅ Created session on %s\n", session.ShowTime.Format("2006-01-02"))
	}

	var ticketCount int64
	if err := s.db.PostgreSQL.Model(&reservations.Ticket{}).Count(&ticketCount).Error; err != nil {
		return fmt.Errorf("failed to verify ticket table: %w", err)
	}
	fmt.Printf("    ✅ Ticket table ready (%d existing tickets)\n", ticketCount)

	return nil
}
