package services

import (
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
)

// VendorService — a vendor creates team leaders and spends its single
// lifetime approval on exactly one of them.
type VendorService struct {
	Vendors     *repositories.VendorRepository
	TeamLeaders *repositories.TeamLeaderRepository
	Auth        *AuthService
	Notifier    *TelegramService
}

func NewVendorService(
	vendors *repositories.VendorRepository,
	teamLeaders *repositories.TeamLeaderRepository,
	auth *AuthService,
	notifier *TelegramService,
) *VendorService {
	return &VendorService{
		Vendors:     vendors,
		TeamLeaders: teamLeaders,
		Auth:        auth,
		Notifier:    notifier,
	}
}

func (s *VendorService) CreateTeamLeader(vendorID int64, userID, password string) (*models.TeamLeader, error) {
	hash, err := s.Auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	tl, err := s.TeamLeaders.Create(vendorID, userID, hash)
	if err != nil {
		return nil, err
	}
	s.Notifier.Notify(fmt.Sprintf("New team leader created: %s", tl.UserID))
	return tl, nil
}

// ApproveTeamLeader consumes the vendor's one-time approval edge. Both writes
// (team leader flag, vendor pointer) happen in one transaction inside the
// repository; any failure leaves state untouched.
func (s *VendorService) ApproveTeamLeader(vendorID, teamLeaderID int64) error {
	if err := s.Vendors.ApproveTeamLeader(vendorID, teamLeaderID); err != nil {
		return err
	}
	s.Notifier.Notify(fmt.Sprintf("Team leader %d approved by vendor %d", teamLeaderID, vendorID))
	return nil
}
