package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
	auditService *services.AuditService
}

func NewAdminHandler(adminService *services.AdminService, auditService *services.AuditService) *AdminHandler {
	return &AdminHandler{adminService: adminService, auditService: auditService}
}

// @Summary      Create vendor
// @Description  Admin creates a vendor account owned by the calling admin.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateVendorRequest  true  "New vendor credentials"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/admin/vendors [post]
func (h *AdminHandler) CreateVendor(c *gin.Context) {
	var req models.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminUserID, role := callerIdentity(c)

	vendor, err := h.adminService.CreateVendor(adminID, req.UserID, req.Password)
	if err != nil {
		log.Printf("[admin][create-vendor] failed: admin_id=%d err=%v", adminID, err)
		respondDomainError(c, err)
		return
	}

	h.auditService.Record(role, adminUserID, "CREATE_VENDOR",
		fmt.Sprintf("Created vendor: %s", vendor.UserID), c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vendor created successfully",
		"vendor": gin.H{
			"vendor_id": vendor.ID,
			"user_id":   vendor.UserID,
		},
	})
}
