package sessions

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
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
		&ShowSession{},
	))

	return db
}

func TestMalformedDateRejected(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(NewRepository(db), nil, nil)
	ctx := context.Background()

	for _, input := range []string{"02-06-2022", "2022/06/02", "yesterday", "2022-13-40"} {
		_, err := service.GetAllSessions(ctx, SessionListQuery{Date: input})
		assert.ErrorIs(t, err, ErrMalformedDate, "input %q", input)
	}
}

func TestMalformedShowIDRejected(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(NewRepository(db), nil, nil)
	ctx := context.Background()

	_, err := service.GetAllSessions(ctx, SessionListQuery{AstronomyShow: "not-a-uuid"})
	assert.ErrorIs(t, err, ErrInvalidShowID)
}

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters(SessionListQuery{Date: "2022-06-02"})
	require.NoError(t, err)
	assert.Equal(t, "2022-06-02", filters.Date)
	assert.Nil(t, filters.ShowID)

	showID := uuid.New()
	filters, err = parseFilters(SessionListQuery{AstronomyShow: showID.String()})
	require.NoError(t, err)
	require.NotNil(t, filters.ShowID)
	assert.Equal(t, showID, *filters.ShowID)

	filters, err = parseFilters(SessionListQuery{})
	require.NoError(t, err)
	assert.Empty(t, filters.Date)
	assert.Nil(t, filters.ShowID)
}
