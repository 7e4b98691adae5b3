package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/pdf"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
)

type SessionSummary struct {
	BinsCounted int     `json:"binsCount"`
	TotalQty    int     `json:"totalQty"`
	TimeTaken   string  `json:"timeTaken"`
	Efficiency  float64 `json:"efficiency"` // bins per hour
	ReportPath  string  `json:"reportPath,omitempty"`
}

type CountingService struct {
	Bins     *repositories.BinRepository
	Counting *repositories.CountingRepository
	Workers  *repositories.WorkerRepository
	Reports  pdf.Generator // nil disables PDF output
}

func NewCountingService(
	bins *repositories.BinRepository,
	counting *repositories.CountingRepository,
	workers *repositories.WorkerRepository,
	reports pdf.Generator,
) *CountingService {
	return &CountingService{
		Bins:     bins,
		Counting: counting,
		Workers:  workers,
		Reports:  reports,
	}
}

func (s *CountingService) ListBins() ([]*models.Bin, error) {
	return s.Bins.List()
}

// AddEntry logs one counted bin, resolving the owning team leader's name
// through the hierarchy so reports stay readable after personnel changes.
func (s *CountingService) AddEntry(workerID int64, workerUsername, whName string, binID int64, qty int) (int64, error) {
	tlName, err := s.Workers.GetTeamLeaderName(workerID)
	if err != nil {
		if err == models.ErrNotFound {
			tlName = "Unknown"
		} else {
			return 0, err
		}
	}
	entry := &models.CountingEntry{
		WarehouseName:  whName,
		Date:           time.Now().Format("2006-01-02"),
		TeamLeaderName: tlName,
		WorkerUsername: workerUsername,
		BinID:          binID,
		QtyCounted:     qty,
	}
	return s.Counting.CreateEntry(entry)
}

// EndSession totals the day's entries, persists the performance record and
// renders the PDF summary. The PDF is best-effort; a render failure is logged
// and the session still closes.
func (s *CountingService) EndSession(workerUsername, whName string, startTime time.Time) (*SessionSummary, error) {
	endTime := time.Now()
	date := endTime.Format("2006-01-02")

	bins, qty, err := s.Counting.SessionTotals(workerUsername, whName, date)
	if err != nil {
		return nil, err
	}

	hours := endTime.Sub(startTime).Hours()
	var efficiency float64
	if hours > 0 {
		efficiency = float64(bins) / hours
	}

	rec := &models.PerformanceRecord{
		WarehouseName:  whName,
		Date:           date,
		WorkerUsername: workerUsername,
		BinsCounted:    bins,
		QtyCounted:     qty,
		StartTime:      startTime,
		EndTime:        endTime,
		Efficiency:     efficiency,
	}
	if err := s.Counting.CreatePerformance(rec); err != nil {
		return nil, err
	}

	summary := &SessionSummary{
		BinsCounted: bins,
		TotalQty:    qty,
		TimeTaken:   formatHours(hours),
		Efficiency:  efficiency,
	}

	if s.Reports != nil {
		path, err := s.Reports.GenerateSessionReport(pdf.SessionReportData{
			WarehouseName:  whName,
			WorkerUsername: workerUsername,
			BinsCounted:    bins,
			QtyCounted:     qty,
			StartTime:      startTime,
			EndTime:        endTime,
			Efficiency:     efficiency,
		})
		if err != nil {
			log.Printf("[counting][end] session report pdf failed: worker=%s err=%v", workerUsername, err)
		} else {
			summary.ReportPath = path
		}
	}

	return summary, nil
}

func formatHours(hours float64) string {
	return fmt.Sprintf("%.2f hours", hours)
}
