package shows

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

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
		&AstronomyShow{},
		&ShowThemeAssignment{},
	))

	return db
}

func createTheme(t *testing.T, db *gorm.DB, name string) themes.ShowTheme {
	t.Helper()

	theme := themes.ShowTheme{Name: name}
	require.NoError(t, db.Create(&theme).Error)
	return theme
}

func TestTitleFilterIsCaseInsensitiveSubstring(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for _, title := range []string{"Journey Through the Solar System", "Edge of the Event Horizon", "Solar Flares Up Close"} {
		require.NoError(t, db.Create(&AstronomyShow{Title: title, Description: "d"}).Error)
	}

	shows, total, err := repo.GetAll(ctx, ShowListQuery{Title: "solar"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, shows, 2)

	_, total, err = repo.GetAll(ctx, ShowListQuery{Title: "nebula"}, nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestThemeFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	solarSystem := createTheme(t, db, "Solar System")
	blackHoles := createTheme(t, db, "Black Holes")

	require.NoError(t, db.Create(&AstronomyShow{
		Title:       "Journey Through the Solar System",
		Description: "d",
		Themes:      []themes.ShowTheme{solarSystem},
	}).Error)
	require.NoError(t, db.Create(&AstronomyShow{
		Title:       "Edge of the Event Horizon",
		Description: "d",
		Themes:      []themes.ShowTheme{blackHoles},
	}).Error)
	require.NoError(t, db.Create(&AstronomyShow{
		Title:       "Everything Everywhere",
		Description: "d",
		Themes:      []themes.ShowTheme{solarSystem, blackHoles},
	}).Error)

	shows, total, err := repo.GetAll(ctx, ShowListQuery{}, []uuid.UUID{blackHoles.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, shows, 2)

	// Multiple theme ids behave as OR
	_, total, err = repo.GetAll(ctx, ShowListQuery{}, []uuid.UUID{solarSystem.ID, blackHoles.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&AstronomyShow{
			Title:       fmt.Sprintf("Show %d", i),
			Description: "d",
		}).Error)
	}

	page1, total, err := repo.GetAll(ctx, ShowListQuery{Page: 1, Limit: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 2)

	page3, _, err := repo.GetAll(ctx, ShowListQuery{Page: 3, Limit: 2}, nil)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestUpdateImagePath(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	show := AstronomyShow{Title: "One Small Step", Description: "d"}
	require.NoError(t, db.Create(&show).Error)

	path := "uploads/astronomy_show/one-small-step-" + uuid.NewString() + ".jpg"
	require.NoError(t, repo.UpdateImagePath(ctx, show.ID, path))

	found, err := repo.GetByID(ctx, show.ID)
	require.NoError(t, err)
	assert.Equal(t, path, found.ImagePath)

	// Unknown show id reports not found
	err = repo.UpdateImagePath(ctx, uuid.New(), path)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestParseThemeIDList(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	ids, err := parseThemeIDList(fmt.Sprintf("%s,%s", first, second))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first, second}, ids)

	ids, err = parseThemeIDList("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	// Whitespace around ids is tolerated
	ids, err = parseThemeIDList(fmt.Sprintf(" %s , %s ", first, second))
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	// Malformed ids fail instead of matching nothing
	_, err = parseThemeIDList("1,2,3")
	assert.ErrorIs(t, err, ErrInvalidThemeID)
}
