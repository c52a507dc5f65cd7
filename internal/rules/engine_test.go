package rules

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sanctionQuery    = `FROM sanctions`
	membershipQuery  = `FROM participant_programs`
	dailyCountQuery  = `r\.date = \$2`
	weeklyCountQuery = `r\.date BETWEEN`
	rosterCountQuery = `SELECT COUNT\(\*\) FROM reservation_participants WHERE reservation_id = \$1`
)

func newEngineMock(t *testing.T) (*Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEngine(db), mock
}

func openRoom() *domain.Room {
	return &domain.Room{Name: "A-101", Building: "Central", Capacity: 4, Type: domain.RoomTypeOpen}
}

func TestEngine_CheckParticipant_SanctionBlocksFirst(t *testing.T) {
	engine, mock := newEngineMock(t)

	mock.ExpectQuery(sanctionQuery).
		WithArgs("10000001", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := engine.CheckParticipant(context.Background(), "10000001", openRoom(), time.Now())

	assert.ErrorIs(t, err, domain.ErrSanctionActive)
	assert.Contains(t, err.Error(), "10000001")
	// nothing past the sanction check ran
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_CheckParticipant_RoomTypeBlocks(t *testing.T) {
	engine, mock := newEngineMock(t)

	mock.ExpectQuery(sanctionQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(membershipQuery).
		WithArgs("10000001").
		WillReturnRows(sqlmock.NewRows([]string{"program", "role", "tier"}).
			AddRow("Physics", "student", "undergraduate"))

	room := &domain.Room{Name: "G-1", Building: "Central", Capacity: 4, Type: domain.RoomTypeGraduate}
	err := engine.CheckParticipant(context.Background(), "10000001", room, time.Now())

	assert.ErrorIs(t, err, domain.ErrRoomNotAllowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_CheckParticipant_DailyLimit(t *testing.T) {
	engine, mock := newEngineMock(t)

	mock.ExpectQuery(sanctionQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(membershipQuery).
		WillReturnRows(sqlmock.NewRows([]string{"program", "role", "tier"}))
	mock.ExpectQuery(dailyCountQuery).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(MaxDailyReservations))

	err := engine.CheckParticipant(context.Background(), "10000001", openRoom(), time.Now())

	assert.ErrorIs(t, err, domain.ErrDailyLimit)
	// the weekly count is never consulted once the daily cap trips
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_CheckParticipant_WeeklyLimit(t *testing.T) {
	engine, mock := newEngineMock(t)

	mock.ExpectQuery(sanctionQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(membershipQuery).
		WillReturnRows(sqlmock.NewRows([]string{"program", "role", "tier"}))
	mock.ExpectQuery(dailyCountQuery).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(weeklyCountQuery).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(MaxWeeklyReservations))

	err := engine.CheckParticipant(context.Background(), "10000001", openRoom(), time.Now())

	assert.ErrorIs(t, err, domain.ErrWeeklyLimit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_CheckParticipant_PrivilegedSkipsQuotas(t *testing.T) {
	engine, mock := newEngineMock(t)

	mock.ExpectQuery(sanctionQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(membershipQuery).
		WillReturnRows(sqlmock.NewRows([]string{"program", "role", "tier"}).
			AddRow("MSc Data", "student", "graduate"))

	room := &domain.Room{Name: "F-1", Building: "Central", Capacity: 2, Type: domain.RoomTypeFaculty}
	err := engine.CheckParticipant(context.Background(), "10000001", room, time.Now())

	assert.NoError(t, err)
	// no quota queries for privileged participants
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_CheckParticipant_Admits(t *testing.T) {
	engine, mock := newEngineMock(t)

	mock.ExpectQuery(sanctionQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(membershipQuery).
		WillReturnRows(sqlmock.NewRows([]string{"program", "role", "tier"}).
			AddRow("Physics", "student", "undergraduate"))
	mock.ExpectQuery(dailyCountQuery).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(weeklyCountQuery).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	err := engine.CheckParticipant(context.Background(), "10000001", openRoom(), time.Now())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_CountActiveInWeek_MondayBounds(t *testing.T) {
	engine, mock := newEngineMock(t)

	// Wednesday 2025-03-12: the week runs Monday 10th through Sunday 16th.
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(weeklyCountQuery).
		WithArgs("10000001", monday, sunday, domain.ReservationStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := engine.CountActiveInWeek(context.Background(), "10000001", date)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_CapacityOK_Boundary(t *testing.T) {
	engine, mock := newEngineMock(t)

	mock.ExpectQuery(rosterCountQuery).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	ok, err := engine.CapacityOK(context.Background(), "res-1", 6, 1)
	require.NoError(t, err)
	assert.True(t, ok, "filling the room exactly to capacity is allowed")

	mock.ExpectQuery(rosterCountQuery).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	ok, err = engine.CapacityOK(context.Background(), "res-1", 6, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_HasActiveSanction_QueryError(t *testing.T) {
	engine, mock := newEngineMock(t)

	mock.ExpectQuery(sanctionQuery).WillReturnError(assert.AnError)

	_, err := engine.HasActiveSanction(context.Background(), "10000001", time.Now())
	assert.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`check sanction`), err.Error())
}
