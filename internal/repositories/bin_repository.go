package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
)

type BinRepository struct {
	DB *sql.DB
}

func NewBinRepository(db *sql.DB) *BinRepository {
	return &BinRepository{DB: db}
}

func (r *BinRepository) List() ([]*models.Bin, error) {
	const q = `SELECT bin_id, bin_name FROM bin_master ORDER BY bin_name`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list bins: %w", err)
	}
	defer rows.Close()

	var bins []*models.Bin
	for rows.Next() {
		var b models.Bin
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan bin: %w", err)
		}
		bins = append(bins, &b)
	}
	return bins, rows.Err()
}
