package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shruthi-d-official/WareHouse/internal/models"
	"github.com/Shruthi-d-official/WareHouse/internal/services"
)

type CountingHandler struct {
	countingService *services.CountingService
	auditService    *services.AuditService
}

func NewCountingHandler(countingService *services.CountingService, auditService *services.AuditService) *CountingHandler {
	return &CountingHandler{countingService: countingService, auditService: auditService}
}

// @Summary      List bins
// @Tags         Counting
// @Produce      json
// @Success      200  {array}  models.Bin
// @Security     BearerAuth
// @Router       /api/counting/bins [get]
func (h *CountingHandler) GetBins(c *gin.Context) {
	bins, err := h.countingService.ListBins()
	if err != nil {
		log.Printf("[counting][bins] failed: err=%v", err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bins)
}

// @Summary      Start counting session
// @Tags         Counting
// @Accept       json
// @Produce      json
// @Param        request  body      models.StartCountingRequest  true  "Warehouse"
// @Success      200      {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /api/counting/start [post]
func (h *CountingHandler) StartCounting(c *gin.Context) {
	var req models.StartCountingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, workerUserID, role := callerIdentity(c)
	startTime := time.Now()

	h.auditService.Record(role, workerUserID, "START_COUNTING",
		fmt.Sprintf("Started counting session in %s", req.WarehouseName), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"message":   "Counting session started",
		"startTime": startTime,
		"whName":    req.WarehouseName,
	})
}

// @Summary      Add counting entry
// @Tags         Counting
// @Accept       json
// @Produce      json
// @Param        request  body      models.CountingEntryRequest  true  "Counted bin"
// @Success      201      {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /api/counting/entry [post]
func (h *CountingHandler) AddEntry(c *gin.Context) {
	var req models.CountingEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workerID, workerUserID, role := callerIdentity(c)

	logID, err := h.countingService.AddEntry(workerID, workerUserID, req.WarehouseName, req.BinID, *req.QtyCounted)
	if err != nil {
		log.Printf("[counting][entry] failed: worker_id=%d err=%v", workerID, err)
		respondDomainError(c, err)
		return
	}

	h.auditService.Record(role, workerUserID, "ADD_COUNTING_ENTRY",
		fmt.Sprintf("Added counting entry for bin %d, qty: %d", req.BinID, *req.QtyCounted), c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Counting entry added successfully",
		"logId":   logID,
	})
}

// @Summary      End counting session
// @Tags         Counting
// @Accept       json
// @Produce      json
// @Param        request  body      models.EndCountingRequest  true  "Warehouse and start time"
// @Success      200      {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /api/counting/end [post]
func (h *CountingHandler) EndCounting(c *gin.Context) {
	var req models.EndCountingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid start time is required"})
		return
	}

	_, workerUserID, role := callerIdentity(c)

	summary, err := h.countingService.EndSession(workerUserID, req.WarehouseName, startTime)
	if err != nil {
		log.Printf("[counting][end] failed: worker=%s err=%v", workerUserID, err)
		respondDomainError(c, err)
		return
	}

	h.auditService.Record(role, workerUserID, "END_COUNTING",
		fmt.Sprintf("Ended counting session in %s, bins: %d, qty: %d",
			req.WarehouseName, summary.BinsCounted, summary.TotalQty), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"message": "Counting session ended successfully",
		"summary": summary,
	})
}
