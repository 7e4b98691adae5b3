package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
)

func newVendorServiceForTest(t *testing.T) (*VendorService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	vendors := repositories.NewVendorRepository(db)
	teamLeaders := repositories.NewTeamLeaderRepository(db)
	auth := &AuthService{} // only HashPassword is reached from here
	svc := NewVendorService(vendors, teamLeaders, auth, nil)
	return svc, mock
}

func TestApproveTeamLeaderCommitsBothWrites(t *testing.T) {
	svc, mock := newVendorServiceForTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT approved_team_leader_id FROM vendors").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"approved_team_leader_id"}).AddRow(nil))
	mock.ExpectExec("UPDATE team_leaders SET is_approved = TRUE").
		WithArgs(int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE vendors SET approved_team_leader_id").
		WithArgs(int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.ApproveTeamLeader(2, 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveTeamLeaderSecondApprovalRejected(t *testing.T) {
	svc, mock := newVendorServiceForTest(t)

	// edge already spent: the tx rolls back before touching team_leaders
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT approved_team_leader_id FROM vendors").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"approved_team_leader_id"}).AddRow(int64(4)))
	mock.ExpectRollback()

	err := svc.ApproveTeamLeader(2, 5)
	assert.ErrorIs(t, err, models.ErrAlreadyApproved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveTeamLeaderNotOwnedRollsBack(t *testing.T) {
	svc, mock := newVendorServiceForTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT approved_team_leader_id FROM vendors").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"approved_team_leader_id"}).AddRow(nil))
	mock.ExpectExec("UPDATE team_leaders SET is_approved = TRUE").
		WithArgs(int64(99), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.ApproveTeamLeader(2, 99)
	assert.ErrorIs(t, err, models.ErrNotOwned)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveTeamLeaderUnknownVendor(t *testing.T) {
	svc, mock := newVendorServiceForTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT approved_team_leader_id FROM vendors").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"approved_team_leader_id"}))
	mock.ExpectRollback()

	err := svc.ApproveTeamLeader(7, 5)
	assert.ErrorIs(t, err, models.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamLeaderDuplicateLoginID(t *testing.T) {
	svc, mock := newVendorServiceForTest(t)

	mock.ExpectQuery("INSERT INTO team_leaders").
		WithArgs(int64(2), "leader-one", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := svc.CreateTeamLeader(2, "leader-one", "secret")
	assert.ErrorIs(t, err, models.ErrDuplicateLoginID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamLeaderOnlyTouchesOwnTier(t *testing.T) {
	svc, mock := newVendorServiceForTest(t)

	// same login id may exist in another tier; creation consults only team_leaders
	mock.ExpectQuery("INSERT INTO team_leaders").
		WithArgs(int64(2), "shared-handle", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"team_leader_id", "created_at"}).AddRow(int64(8), time.Now()))

	tl, err := svc.CreateTeamLeader(2, "shared-handle", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(8), tl.ID)
	assert.False(t, tl.IsApproved)
	require.NoError(t, mock.ExpectationsWereMet())
}
