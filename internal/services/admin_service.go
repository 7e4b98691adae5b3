package services

import (
	"fmt"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/repositories"
)

// AdminService — the admin tier only creates vendors.
type AdminService struct {
	Vendors  *repositories.VendorRepository
	Auth     *AuthService
	Notifier *TelegramService
}

func NewAdminService(vendors *repositories.VendorRepository, auth *AuthService, notifier *TelegramService) *AdminService {
	return &AdminService{Vendors: vendors, Auth: auth, Notifier: notifier}
}

func (s *AdminService) CreateVendor(adminID int64, userID, password string) (*models.Vendor, error) {
	hash, err := s.Auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	vendor, err := s.Vendors.Create(adminID, userID, hash)
	if err != nil {
		return nil, err
	}
	s.Notifier.Notify(fmt.Sprintf("New vendor created: %s", vendor.UserID))
	return vendor, nil
}
