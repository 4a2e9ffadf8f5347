package themes

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&ShowTheme{}))
	return db
}

func TestCreateTheme(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(NewRepository(db))
	ctx := context.Background()

	theme, err := service.CreateTheme(ctx, CreateThemeRequest{Name: "Solar System"})
	require.NoError(t, err)
	assert.Equal(t, "Solar System", theme.Name)
	assert.NotEmpty(t, theme.ID)
}

func TestDuplicateThemeNameRejected(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(NewRepository(db))
	ctx := context.Background()

	_, err := service.CreateTheme(ctx, CreateThemeRequest{Name: "Black Holes"})
	require.NoError(t, err)

	_, err = service.CreateTheme(ctx, CreateThemeRequest{Name: "Black Holes"})
	assert.ErrorIs(t, err, ErrThemeAlreadyExists)
}

func TestGetThemesByIDsFailsOnUnknownID(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(NewRepository(db))
	ctx := context.Background()

	created, err := service.CreateTheme(ctx, CreateThemeRequest{Name: "Deep Space"})
	require.NoError(t, err)
	createdID := uuid.MustParse(created.ID)

	resolved, err := service.GetThemesByIDs(ctx, []uuid.UUID{createdID})
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	_, err = service.GetThemesByIDs(ctx, []uuid.UUID{createdID, uuid.New()})
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestGetAllThemesSortedByName(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(NewRepository(db))
	ctx := context.Background()

	for _, name := range []string{"Constellations", "Black Holes", "Solar System"} {
		_, err := service.CreateTheme(ctx, CreateThemeRequest{Name: name})
		require.NoError(t, err)
	}

	all, err := service.GetAllThemes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Black Holes", all[0].Name)
	assert.Equal(t, "Constellations", all[1].Name)
	assert.Equal(t, "Solar System", all[2].Name)
}
