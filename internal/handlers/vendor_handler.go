package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/services"
)

type VendorHandler struct {
	vendorService *services.VendorService
	auditService  *services.AuditService
}

func NewVendorHandler(vendorService *services.VendorService, auditService *services.AuditService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService, auditService: auditService}
}

// @Summary      Create team leader
// @Description  Vendor creates a team leader scoped to itself.
// @Tags         Vendor
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateTeamLeaderRequest  true  "New team leader credentials"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/vendor/team-leaders [post]
func (h *VendorHandler) CreateTeamLeader(c *gin.Context) {
	var req models.CreateTeamLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendorID, vendorUserID, role := callerIdentity(c)

	tl, err := h.vendorService.CreateTeamLeader(vendorID, req.UserID, req.Password)
	if err != nil {
		log.Printf("[vendor][create-team-leader] failed: vendor_id=%d err=%v", vendorID, err)
		respondDomainError(c, err)
		return
	}

	h.auditService.Record(role, vendorUserID, "CREATE_TEAM_LEADER",
		fmt.Sprintf("Created team leader: %s", tl.UserID), c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Team leader created successfully",
		"teamLeader": gin.H{
			"team_leader_id": tl.ID,
			"user_id":        tl.UserID,
		},
	})
}

// @Summary      Approve team leader
// @Description  One-time approval: a vendor may activate at most one team leader, ever.
// @Tags         Vendor
// @Accept       json
// @Produce      json
// @Param        request  body      models.ApproveTeamLeaderRequest  true  "Team leader id"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/vendor/approve-team-leader [post]
func (h *VendorHandler) ApproveTeamLeader(c *gin.Context) {
	var req models.ApproveTeamLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendorID, vendorUserID, role := callerIdentity(c)

	if err := h.vendorService.ApproveTeamLeader(vendorID, req.TeamLeaderID); err != nil {
		log.Printf("[vendor][approve-team-leader] failed: vendor_id=%d team_leader_id=%d err=%v",
			vendorID, req.TeamLeaderID, err)
		respondDomainError(c, err)
		return
	}

	h.auditService.Record(role, vendorUserID, "APPROVE_TEAM_LEADER",
		fmt.Sprintf("Approved team leader ID: %d", req.TeamLeaderID), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Team leader approved successfully"})
}
