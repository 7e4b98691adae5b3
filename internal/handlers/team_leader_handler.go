package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/services"
)

type TeamLeaderHandler struct {
	teamLeaderService *services.TeamLeaderService
	auditService      *services.AuditService
}

func NewTeamLeaderHandler(teamLeaderService *services.TeamLeaderService, auditService *services.AuditService) *TeamLeaderHandler {
	return &TeamLeaderHandler{teamLeaderService: teamLeaderService, auditService: auditService}
}

// @Summary      Create worker
// @Description  Team leader creates a worker with an email address for OTP delivery.
// @Tags         TeamLeader
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateWorkerRequest  true  "New worker credentials"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/team-leader/workers [post]
func (h *TeamLeaderHandler) CreateWorker(c *gin.Context) {
	var req models.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teamLeaderID, tlUserID, role := callerIdentity(c)

	worker, err := h.teamLeaderService.CreateWorker(teamLeaderID, req.UserID, req.Password, req.Email)
	if err != nil {
		log.Printf("[team-leader][create-worker] failed: team_leader_id=%d err=%v", teamLeaderID, err)
		respondDomainError(c, err)
		return
	}

	h.auditService.Record(role, tlUserID, "CREATE_WORKER",
		fmt.Sprintf("Created worker: %s", worker.UserID), c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Worker created successfully",
		"worker": gin.H{
			"worker_id": worker.ID,
			"user_id":   worker.UserID,
			"email":     worker.Email,
		},
	})
}

// @Summary      Approve worker
// @Description  Team leader approves an owned worker. Unlike the vendor edge there is no one-per-leader cap.
// @Tags         TeamLeader
// @Accept       json
// @Produce      json
// @Param        request  body      models.ApproveWorkerRequest  true  "Worker id"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/team-leader/approve-worker [post]
func (h *TeamLeaderHandler) ApproveWorker(c *gin.Context) {
	var req models.ApproveWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teamLeaderID, tlUserID, role := callerIdentity(c)

	if err := h.teamLeaderService.ApproveWorker(teamLeaderID, req.WorkerID); err != nil {
		log.Printf("[team-leader][approve-worker] failed: team_leader_id=%d worker_id=%d err=%v",
			teamLeaderID, req.WorkerID, err)
		respondDomainError(c, err)
		return
	}

	h.auditService.Record(role, tlUserID, "APPROVE_WORKER",
		fmt.Sprintf("Approved worker ID: %d", req.WorkerID), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Worker approved successfully"})
}
