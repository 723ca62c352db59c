package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lus-labeler-backend/internal/models"
	"lus-labeler-backend/internal/repository"
)

// CreateHistoryRequest is the payload for POST /history.
type CreateHistoryRequest struct {
	PatientID     string `json:"patient_id" binding:"required"`
	SequenceID    string `json:"sequence_id" binding:"required"`
	PreviousLabel string `json:"previous_label" binding:"required"`
	UpdatedLabel  string `json:"updated_label" binding:"required"`
	Annotator     string `json:"annotator" binding:"required"`
}

// HistoryHandler serves the label-correction history.
type HistoryHandler struct {
	repo repository.HistoryRepository
	log  *zap.Logger
}

// NewHistoryHandler returns a handler over the given repository.
func NewHistoryHandler(repo repository.HistoryRepository, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, log: log}
}

// List handles GET /history?annotator=. Entries come back newest first.
func (h *HistoryHandler) List(c *gin.Context) {
	entries, err := h.repo.List(c.Query("annotator"))
	if err != nil {
		h.log.Error("failed to list history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// Upsert handles POST /history. A second write for the same
// (patient_id, sequence_id) pair updates the existing entry in place and
// refreshes its timestamp instead of appending.
func (h *HistoryHandler) Upsert(c *gin.Context) {
	var req CreateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.HistoryEntry{
		PatientID:     req.PatientID,
		SequenceID:    req.SequenceID,
		PreviousLabel: req.PreviousLabel,
		UpdatedLabel:  req.UpdatedLabel,
		Annotator:     req.Annotator,
	}

	created, err := h.repo.Upsert(&entry)
	if err != nil {
		h.log.Error("failed to upsert history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, entry)
}

// Delete handles DELETE /history/:id.
func (h *HistoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid history entry ID"})
		return
	}

	deleted, err := h.repo.Delete(uint(id))
	if err != nil {
		h.log.Error("failed to delete history entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"detail": "History entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
