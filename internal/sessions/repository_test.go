package sessions_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/reservations"
	sessionspkg "github.com/sasha-semenenko/planetarium-api-service/internal/sessions"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shows"
	"github.com/sasha-semenenko/planetarium-api-service/internal/themes"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(10000)", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&themes.ShowTheme{},
		&shows.AstronomyShow{},
		&shows.ShowThemeAssignment{},
		&domes.PlanetariumDome{},
		&sessionspkg.ShowSession{},
		&reservations.Ticket{},
	))

	return db
}

func createFixtures(t *testing.T, db *gorm.DB) (showID, domeID uuid.UUID) {
	t.Helper()

	dome := domes.PlanetariumDome{Name: "Main Dome", Rows: 2, SeatsPerRow: 3}
	require.NoError(t, db.Create(&dome).Error)

	show := shows.AstronomyShow{Title: "Journey Through the Solar System", Description: "A tour"}
	require.NoError(t, db.Create(&show).Error)

	return show.ID, dome.ID
}

func createSessionAt(t *testing.T, db *gorm.DB, showID, domeID uuid.UUID, showTime time.Time) uuid.UUID {
	t.Helper()

	session := sessionspkg.ShowSession{ShowID: showID, DomeID: domeID, ShowTime: showTime}
	require.NoError(t, db.Create(&session).Error)
	return session.ID
}

func TestGetByIDIncludesAvailability(t *testing.T) {
	db := setupTestDB(t)
	repo := sessionspkg.NewRepository(db)
	ctx := context.Background()

	showID, domeID := createFixtures(t, db)
	sessionID := createSessionAt(t, db, showID, domeID, time.Date(2022, 6, 2, 14, 0, 0, 0, time.UTC))

	session, err := repo.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 6, session.TicketsAvailable)
	assert.Equal(t, "Journey Through the Solar System", session.Show.Title)
	assert.Equal(t, 2, session.Dome.Rows)
}

func TestDateFilterMatchesCalendarDate(t *testing.T) {
	db := setupTestDB(t)
	repo := sessionspkg.NewRepository(db)
	ctx := context.Background()

	showID, domeID := createFixtures(t, db)
	matching := createSessionAt(t, db, showID, domeID, time.Date(2022, 6, 2, 9, 30, 0, 0, time.UTC))
	createSessionAt(t, db, showID, domeID, time.Date(2022, 6, 2, 20, 0, 0, 0, time.UTC))
	createSessionAt(t, db, showID, domeID, time.Date(2022, 1, 1, 14, 0, 0, 0, time.UTC))

	sessions, total, err := repo.GetAll(ctx, sessionspkg.SessionListQuery{}, sessionspkg.Filters{Date: "2022-06-02"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, sessions, 2)
	assert.Equal(t, matching, sessions[0].ID) // ordered by show time

	// The January session is the only one on its date
	sessions, total, err = repo.GetAll(ctx, sessionspkg.SessionListQuery{}, sessionspkg.Filters{Date: "2022-01-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, sessions, 1)

	// A date with no sessions matches nothing
	_, total, err = repo.GetAll(ctx, sessionspkg.SessionListQuery{}, sessionspkg.Filters{Date: "2023-03-03"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestShowFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := sessionspkg.NewRepository(db)
	ctx := context.Background()

	showID, domeID := createFixtures(t, db)
	otherShow := shows.AstronomyShow{Title: "Edge of the Event Horizon", Description: "Black holes"}
	require.NoError(t, db.Create(&otherShow).Error)

	createSessionAt(t, db, showID, domeID, time.Date(2022, 6, 2, 9, 0, 0, 0, time.UTC))
	createSessionAt(t, db, otherShow.ID, domeID, time.Date(2022, 6, 2, 12, 0, 0, 0, time.UTC))

	sessions, total, err := repo.GetAll(ctx, sessionspkg.SessionListQuery{}, sessionspkg.Filters{ShowID: &showID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, sessions, 1)
	assert.Equal(t, showID, sessions[0].ShowID)
}

func TestCombinedFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := sessionspkg.NewRepository(db)
	ctx := context.Background()

	showID, domeID := createFixtures(t, db)
	otherShow := shows.AstronomyShow{Title: "Stories in the Stars", Description: "Myths"}
	require.NoError(t, db.Create(&otherShow).Error)

	wanted := createSessionAt(t, db, showID, domeID, time.Date(2022, 6, 2, 9, 0, 0, 0, time.UTC))
	createSessionAt(t, db, showID, domeID, time.Date(2022, 6, 3, 9, 0, 0, 0, time.UTC))
	createSessionAt(t, db, otherShow.ID, domeID, time.Date(2022, 6, 2, 12, 0, 0, 0, time.UTC))

	sessions, total, err := repo.GetAll(ctx, sessionspkg.SessionListQuery{}, sessionspkg.Filters{Date: "2022-06-02", ShowID: &showID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, sessions, 1)
	assert.Equal(t, wanted, sessions[0].ID)
}

func TestNoFilterReturnsEverything(t *testing.T) {
	db := setupTestDB(t)
	repo := sessionspkg.NewRepository(db)
	ctx := context.Background()

	showID, domeID := createFixtures(t, db)
	createSessionAt(t, db, showID, domeID, time.Date(2022, 6, 2, 9, 0, 0, 0, time.UTC))
	createSessionAt(t, db, showID, domeID, time.Date(2022, 1, 1, 9, 0, 0, 0, time.UTC))

	_, total, err := repo.GetAll(ctx, sessionspkg.SessionListQuery{}, sessionspkg.Filters{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestDeleteSession(t *testing.T) {
	db := setupTestDB(t)
	repo := sessionspkg.NewRepository(db)
	ctx := context.Background()

	showID, domeID := createFixtures(t, db)
	sessionID := createSessionAt(t, db, showID, domeID, time.Date(2022, 6, 2, 9, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Delete(ctx, sessionID))

	_, err := repo.GetByID(ctx, sessionID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting again reports not found
	assert.ErrorIs(t, repo.Delete(ctx, sessionID), gorm.ErrRecordNotFound)
}
