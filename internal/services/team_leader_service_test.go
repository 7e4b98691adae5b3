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

func newTeamLeaderServiceForTest(t *testing.T) (*TeamLeaderService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewTeamLeaderService(repositories.NewWorkerRepository(db), &AuthService{}, nil)
	return svc, mock
}

func TestCreateWorkerStoresEmail(t *testing.T) {
	svc, mock := newTeamLeaderServiceForTest(t)

	mock.ExpectQuery("INSERT INTO workers").
		WithArgs(int64(3), "worker-one", sqlmock.AnyArg(), "one@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"worker_id", "created_at"}).AddRow(int64(9), time.Now()))

	w, err := svc.CreateWorker(3, "worker-one", "secret", "one@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(9), w.ID)
	assert.Equal(t, "one@example.com", w.Email)
	assert.False(t, w.IsApproved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWorkerDuplicateLoginID(t *testing.T) {
	svc, mock := newTeamLeaderServiceForTest(t)

	mock.ExpectQuery("INSERT INTO workers").
		WithArgs(int64(3), "worker-one", sqlmock.AnyArg(), "one@example.com").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := svc.CreateWorker(3, "worker-one", "secret", "one@example.com")
	assert.ErrorIs(t, err, models.ErrDuplicateLoginID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveWorkerOwnedSucceeds(t *testing.T) {
	svc, mock := newTeamLeaderServiceForTest(t)

	mock.ExpectExec("UPDATE workers SET is_approved = TRUE").
		WithArgs(int64(9), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.ApproveWorker(3, 9))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveWorkerForeignWorkerRejected(t *testing.T) {
	svc, mock := newTeamLeaderServiceForTest(t)

	// worker exists but belongs to another leader: the predicate matches nothing
	mock.ExpectExec("UPDATE workers SET is_approved = TRUE").
		WithArgs(int64(9), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.ApproveWorker(4, 9)
	assert.ErrorIs(t, err, models.ErrNotOwned)
	require.NoError(t, mock.ExpectationsWereMet())
}
