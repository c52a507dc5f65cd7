package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

const (
	roomLockQuery     = `SELECT capacity, type FROM rooms`
	slotTakenQuery    = `slot_id = \$4 AND status = \$5`
	insertResQuery    = `INSERT INTO reservations`
	participantQuery  = `SELECT 1 FROM participants WHERE ci = \$1`
	sanctionsQuery    = `FROM sanctions`
	membershipsQuery  = `FROM participant_programs`
	rosterCountQuery  = `SELECT COUNT\(\*\) FROM reservation_participants WHERE reservation_id = \$1`
	rosterInsertQuery = `INSERT INTO reservation_participants`
	deleteLockQuery   = `SELECT status = ANY\(\$2\) FROM reservations`
	rosterDeleteQuery = `DELETE FROM reservation_participants WHERE reservation_id = \$1`
	resDeleteQuery    = `DELETE FROM reservations WHERE id = \$1`
	statusLockQuery   = `SELECT status FROM reservations WHERE id = \$1 FOR UPDATE`
	attendanceQuery   = `UPDATE reservation_participants SET attended`
	attendanceCounts  = `FILTER \(WHERE attended IS NULL\)`
	rosterSelectQuery = `SELECT ci FROM reservation_participants`
	sanctionInsert    = `INSERT INTO sanctions`
	noShowUpdateQuery = `UPDATE reservations SET status = \$2`
)

func newReservationMock(t *testing.T) (*ReservationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReservationRepo(&dbpg.DB{Master: db}), mock
}

func testReservation() *domain.Reservation {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:        "res-1",
		RoomName:  "A-101",
		Building:  "Central",
		Date:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		SlotID:    2,
		Status:    domain.ReservationStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func expectNoSanction(mock sqlmock.Sqlmock, ci string) {
	mock.ExpectQuery(sanctionsQuery).
		WithArgs(ci, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
}

func expectGraduateMembership(mock sqlmock.Sqlmock, ci string) {
	mock.ExpectQuery(membershipsQuery).
		WithArgs(ci).
		WillReturnRows(sqlmock.NewRows([]string{"program", "role", "tier"}).
			AddRow("MSc Data", "student", "graduate"))
}

func TestReservationRepo_Create_FillsRoomToCapacity(t *testing.T) {
	repo, mock := newReservationMock(t)
	res := testReservation()
	cis := []string{"10000001", "10000002"}

	mock.ExpectBegin()
	mock.ExpectQuery(roomLockQuery).
		WithArgs(res.RoomName, res.Building).
		WillReturnRows(sqlmock.NewRows([]string{"capacity", "type"}).AddRow(2, "open"))
	mock.ExpectQuery(slotTakenQuery).
		WithArgs(res.RoomName, res.Building, res.Date, res.SlotID, domain.ReservationStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(insertResQuery).
		WithArgs(res.ID, res.RoomName, res.Building, res.Date, res.SlotID,
			res.Status, res.CreatedAt, res.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	for _, ci := range cis {
		mock.ExpectQuery(participantQuery).
			WithArgs(ci).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		expectNoSanction(mock, ci)
		expectGraduateMembership(mock, ci)
	}

	// two incoming into an empty room of capacity two fits exactly
	mock.ExpectQuery(rosterCountQuery).
		WithArgs(res.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for _, ci := range cis {
		mock.ExpectExec(rosterInsertQuery).
			WithArgs(res.ID, ci).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.Create(context.Background(), res, cis)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_Create_SlotTaken(t *testing.T) {
	repo, mock := newReservationMock(t)
	res := testReservation()

	mock.ExpectBegin()
	mock.ExpectQuery(roomLockQuery).
		WillReturnRows(sqlmock.NewRows([]string{"capacity", "type"}).AddRow(4, "open"))
	mock.ExpectQuery(slotTakenQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), res, []string{"10000001"})

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_Create_SanctionRollsBackInsert(t *testing.T) {
	repo, mock := newReservationMock(t)
	res := testReservation()

	mock.ExpectBegin()
	mock.ExpectQuery(roomLockQuery).
		WillReturnRows(sqlmock.NewRows([]string{"capacity", "type"}).AddRow(4, "open"))
	mock.ExpectQuery(slotTakenQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(insertResQuery).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(participantQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(sanctionsQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), res, []string{"10000001"})

	assert.ErrorIs(t, err, domain.ErrSanctionActive)
	// the reservation insert happened but no roster row did; the rollback
	// discards everything
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_Create_CapacityExceeded(t *testing.T) {
	repo, mock := newReservationMock(t)
	res := testReservation()
	cis := []string{"10000001", "10000002"}

	mock.ExpectBegin()
	mock.ExpectQuery(roomLockQuery).
		WillReturnRows(sqlmock.NewRows([]string{"capacity", "type"}).AddRow(1, "open"))
	mock.ExpectQuery(slotTakenQuery).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(insertResQuery).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for _, ci := range cis {
		mock.ExpectQuery(participantQuery).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		expectNoSanction(mock, ci)
		expectGraduateMembership(mock, ci)
	}
	mock.ExpectQuery(rosterCountQuery).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), res, cis)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_Delete_ActiveRejected(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(deleteLockQuery).
		WithArgs("res-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"deletable"}).AddRow(false))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "res-1")

	assert.ErrorIs(t, err, domain.ErrReservationNotDeletable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_Delete_Cancelled(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(deleteLockQuery).
		WithArgs("res-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"deletable"}).AddRow(true))
	mock.ExpectExec(rosterDeleteQuery).
		WithArgs("res-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(resDeleteQuery).
		WithArgs("res-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), "res-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_Delete_NotFound(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(deleteLockQuery).
		WillReturnRows(sqlmock.NewRows([]string{"deletable"}))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationRepo_SetAttendance_NoShowCascade(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(statusLockQuery).
		WithArgs("res-1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("active"))
	mock.ExpectExec(attendanceQuery).
		WithArgs("res-1", "10000002", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// every roster entry is now explicitly absent
	mock.ExpectQuery(attendanceCounts).
		WithArgs("res-1").
		WillReturnRows(sqlmock.NewRows([]string{"total", "present", "unset"}).AddRow(2, 0, 0))
	mock.ExpectQuery(rosterSelectQuery).
		WithArgs("res-1").
		WillReturnRows(sqlmock.NewRows([]string{"ci"}).AddRow("10000001").AddRow("10000002"))
	mock.ExpectExec(sanctionInsert).
		WithArgs(sqlmock.AnyArg(), "10000001", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(sanctionInsert).
		WithArgs(sqlmock.AnyArg(), "10000002", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(noShowUpdateQuery).
		WithArgs("res-1", domain.ReservationStatusNoShow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	sanctioned, err := repo.SetAttendance(context.Background(), "res-1", "10000002", false)

	require.NoError(t, err)
	assert.Equal(t, []string{"10000001", "10000002"}, sanctioned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_SetAttendance_UnsetFlagsBlockCascade(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(statusLockQuery).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("active"))
	mock.ExpectExec(attendanceQuery).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(attendanceCounts).
		WillReturnRows(sqlmock.NewRows([]string{"total", "present", "unset"}).AddRow(2, 0, 1))
	mock.ExpectCommit()

	sanctioned, err := repo.SetAttendance(context.Background(), "res-1", "10000002", false)

	require.NoError(t, err)
	assert.Nil(t, sanctioned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepo_SetAttendance_NotOnReservation(t *testing.T) {
	repo, mock := newReservationMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(statusLockQuery).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("active"))
	mock.ExpectExec(attendanceQuery).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.SetAttendance(context.Background(), "res-1", "99999999", true)

	assert.ErrorIs(t, err, domain.ErrNotOnReservation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
