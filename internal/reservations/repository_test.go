package reservations

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/sessions"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shows"
	"github.com/sasha-semenenko/planetarium-api-service/internal/themes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/users"

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
		&users.User{},
		&themes.ShowTheme{},
		&shows.AstronomyShow{},
		&shows.ShowThemeAssignment{},
		&domes.PlanetariumDome{},
		&sessions.ShowSession{},
		&Reservation{},
		&Ticket{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	user := users.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "hashed",
		Role:      users.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func createTestSession(t *testing.T, db *gorm.DB, rows, seatsPerRow int) uuid.UUID {
	t.Helper()

	dome := domes.PlanetariumDome{Name: "Test Dome", Rows: rows, SeatsPerRow: seatsPerRow}
	require.NoError(t, db.Create(&dome).Error)

	show := shows.AstronomyShow{Title: "Test Show", Description: "A show"}
	require.NoError(t, db.Create(&show).Error)

	session := sessions.ShowSession{ShowID: show.ID, DomeID: dome.ID}
	require.NoError(t, db.Create(&session).Error)
	return session.ID
}

func TestCreateReservationWithTickets(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "booker@test.local")
	sessionID := createTestSession(t, db, 2, 3)

	reservation, err := repo.CreateWithTickets(ctx, userID, []TicketRequest{
		{SessionID: sessionID, Row: 1, Seat: 1},
		{SessionID: sessionID, Row: 1, Seat: 2},
	})
	require.NoError(t, err)
	require.Len(t, reservation.Tickets, 2)
	assert.Equal(t, userID, reservation.UserID)

	var ticketCount int64
	require.NoError(t, db.Model(&Ticket{}).Count(&ticketCount).Error)
	assert.Equal(t, int64(2), ticketCount)
}

func TestDuplicateSeatReturnsConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "first@test.local")
	otherID := createTestUser(t, db, "second@test.local")
	sessionID := createTestSession(t, db, 2, 3)

	_, err := repo.CreateWithTickets(ctx, userID, []TicketRequest{
		{SessionID: sessionID, Row: 1, Seat: 1},
	})
	require.NoError(t, err)

	_, err = repo.CreateWithTickets(ctx, otherID, []TicketRequest{
		{SessionID: sessionID, Row: 1, Seat: 1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSeatTaken)

	// The original booking is untouched
	var ticketCount int64
	require.NoError(t, db.Model(&Ticket{}).Count(&ticketCount).Error)
	assert.Equal(t, int64(1), ticketCount)
}

func TestSeatOutOfRangeRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "booker@test.local")
	sessionID := createTestSession(t, db, 2, 3)

	_, err := repo.CreateWithTickets(ctx, userID, []TicketRequest{
		{SessionID: sessionID, Row: 3, Seat: 1},
	})
	require.Error(t, err)

	var seatErr *domes.SeatError
	require.True(t, errors.As(err, &seatErr))
	assert.Equal(t, "row", seatErr.Field)
	assert.Equal(t, "row number must be in available range: (1, 2), got 3", seatErr.Error())
}

func TestBatchRollsBackOnInvalidTicket(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "booker@test.local")
	sessionID := createTestSession(t, db, 2, 3)

	// Second ticket is out of range; the whole batch must fail
	_, err := repo.CreateWithTickets(ctx, userID, []TicketRequest{
		{SessionID: sessionID, Row: 1, Seat: 2},
		{SessionID: sessionID, Row: 9, Seat: 1},
	})
	require.Error(t, err)

	var ticketCount, reservationCount int64
	require.NoError(t, db.Model(&Ticket{}).Count(&ticketCount).Error)
	require.NoError(t, db.Model(&Reservation{}).Count(&reservationCount).Error)
	assert.Zero(t, ticketCount)
	assert.Zero(t, reservationCount)
}

func TestBatchRollsBackOnConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "first@test.local")
	otherID := createTestUser(t, db, "second@test.local")
	sessionID := createTestSession(t, db, 2, 3)

	_, err := repo.CreateWithTickets(ctx, userID, []TicketRequest{
		{SessionID: sessionID, Row: 1, Seat: 1},
	})
	require.NoError(t, err)

	_, err = repo.CreateWithTickets(ctx, otherID, []TicketRequest{
		{SessionID: sessionID, Row: 2, Seat: 2},
		{SessionID: sessionID, Row: 1, Seat: 1},
	})
	require.ErrorIs(t, err, ErrSeatTaken)

	// The valid (2,2) ticket from the failed batch must not survive
	var ticketCount int64
	require.NoError(t, db.Model(&Ticket{}).Count(&ticketCount).Error)
	assert.Equal(t, int64(1), ticketCount)
}

func TestUnknownSessionRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "booker@test.local")

	_, err := repo.CreateWithTickets(ctx, userID, []TicketRequest{
		{SessionID: uuid.New(), Row: 1, Seat: 1},
	})
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConcurrentSameSeatExactlyOneWins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	firstID := createTestUser(t, db, "first@test.local")
	secondID := createTestUser(t, db, "second@test.local")
	sessionID := createTestSession(t, db, 2, 3)

	var wg sync.WaitGroup
	results := make(chan error, 2)

	for _, userID := range []uuid.UUID{firstID, secondID} {
		wg.Add(1)
		go func(uid uuid.UUID) {
			defer wg.Done()
			_, err := repo.CreateWithTickets(ctx, uid, []TicketRequest{
				{SessionID: sessionID, Row: 1, Seat: 1},
			})
			results <- err
		}(userID)
	}

	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSeatTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	var ticketCount int64
	require.NoError(t, db.Model(&Ticket{}).Count(&ticketCount).Error)
	assert.Equal(t, int64(1), ticketCount)
}

func TestAvailabilityRecomputedAfterBooking(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	sessionRepo := sessions.NewRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "booker@test.local")
	sessionID := createTestSession(t, db, 2, 3)

	before, err := sessionRepo.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 6, before.TicketsAvailable)

	_, err = repo.CreateWithTickets(ctx, userID, []TicketRequest{
		{SessionID: sessionID, Row: 1, Seat: 1},
		{SessionID: sessionID, Row: 2, Seat: 3},
	})
	require.NoError(t, err)

	after, err := sessionRepo.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 4, after.TicketsAvailable)
}

func TestReservationsScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	ownerID := createTestUser(t, db, "owner@test.local")
	strangerID := createTestUser(t, db, "stranger@test.local")
	sessionID := createTestSession(t, db, 2, 3)

	reservation, err := repo.CreateWithTickets(ctx, ownerID, []TicketRequest{
		{SessionID: sessionID, Row: 1, Seat: 1},
	})
	require.NoError(t, err)

	// Owner can read it
	found, err := repo.GetByID(ctx, reservation.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, reservation.ID, found.ID)

	// Anyone else gets not-found, not someone else's data
	_, err = repo.GetByID(ctx, reservation.ID, strangerID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	ownerList, total, err := repo.GetAllForUser(ctx, ownerID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, ownerList, 1)

	strangerList, total, err := repo.GetAllForUser(ctx, strangerID, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, strangerList)
}
