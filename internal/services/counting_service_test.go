package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shruthi-d-official/WareHouse/internal/pdf"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
)

type fakeReportGenerator struct {
	err  error
	path string
	got  *pdf.SessionReportData
}

func (f *fakeReportGenerator) GenerateSessionReport(data pdf.SessionReportData) (string, error) {
	f.got = &data
	return f.path, f.err
}

func newCountingServiceForTest(t *testing.T, reports pdf.Generator) (*CountingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewCountingService(
		repositories.NewBinRepository(db),
		repositories.NewCountingRepository(db),
		repositories.NewWorkerRepository(db),
		reports,
	)
	return svc, mock
}

func TestListBins(t *testing.T) {
	svc, mock := newCountingServiceForTest(t, nil)

	mock.ExpectQuery("SELECT bin_id, bin_name FROM bin_master").
		WillReturnRows(sqlmock.NewRows([]string{"bin_id", "bin_name"}).
			AddRow(int64(1), "BIN-001").
			AddRow(int64(2), "BIN-002"))

	bins, err := svc.ListBins()
	require.NoError(t, err)
	require.Len(t, bins, 2)
	assert.Equal(t, "BIN-001", bins[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddEntryResolvesTeamLeaderName(t *testing.T) {
	svc, mock := newCountingServiceForTest(t, nil)

	mock.ExpectQuery("SELECT tl.user_id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("leader-one"))
	mock.ExpectQuery("INSERT INTO counting_log").
		WithArgs("WH-North", time.Now().Format("2006-01-02"), "leader-one", "worker-one", int64(2), 40).
		WillReturnRows(sqlmock.NewRows([]string{"log_id"}).AddRow(int64(17)))

	id, err := svc.AddEntry(9, "worker-one", "WH-North", 2, 40)
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddEntryOrphanWorkerFallsBackToUnknown(t *testing.T) {
	svc, mock := newCountingServiceForTest(t, nil)

	mock.ExpectQuery("SELECT tl.user_id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectQuery("INSERT INTO counting_log").
		WithArgs("WH-North", time.Now().Format("2006-01-02"), "Unknown", "worker-one", int64(2), 40).
		WillReturnRows(sqlmock.NewRows([]string{"log_id"}).AddRow(int64(18)))

	_, err := svc.AddEntry(9, "worker-one", "WH-North", 2, 40)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEndSessionPersistsPerformanceAndReport(t *testing.T) {
	reports := &fakeReportGenerator{path: "files/reports/session.pdf"}
	svc, mock := newCountingServiceForTest(t, reports)
	start := time.Now().Add(-2 * time.Hour)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("worker-one", "WH-North", time.Now().Format("2006-01-02")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "coalesce"}).AddRow(12, 480))
	mock.ExpectQuery("INSERT INTO performance_log").
		WithArgs("WH-North", time.Now().Format("2006-01-02"), "worker-one", 12, 480,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"performance_id"}).AddRow(int64(3)))

	summary, err := svc.EndSession("worker-one", "WH-North", start)
	require.NoError(t, err)
	assert.Equal(t, 12, summary.BinsCounted)
	assert.Equal(t, 480, summary.TotalQty)
	assert.InDelta(t, 6.0, summary.Efficiency, 0.1) // 12 bins over ~2 hours
	assert.Equal(t, "files/reports/session.pdf", summary.ReportPath)

	require.NotNil(t, reports.got)
	assert.Equal(t, "worker-one", reports.got.WorkerUsername)
	assert.Equal(t, 12, reports.got.BinsCounted)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEndSessionSurvivesReportFailure(t *testing.T) {
	reports := &fakeReportGenerator{err: errors.New("disk full")}
	svc, mock := newCountingServiceForTest(t, reports)
	start := time.Now().Add(-time.Hour)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("worker-one", "WH-North", time.Now().Format("2006-01-02")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "coalesce"}).AddRow(5, 100))
	mock.ExpectQuery("INSERT INTO performance_log").
		WithArgs("WH-North", time.Now().Format("2006-01-02"), "worker-one", 5, 100,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"performance_id"}).AddRow(int64(4)))

	summary, err := svc.EndSession("worker-one", "WH-North", start)
	require.NoError(t, err)
	assert.Empty(t, summary.ReportPath)
	require.NoError(t, mock.ExpectationsWereMet())
}
