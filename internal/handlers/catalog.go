package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lus-labeler-backend/internal/drive"
)

// PatientOut mirrors what the frontend expects for a patient entry. Both
// fields carry the Drive folder name.
type PatientOut struct {
	PatientID   string `json:"patient_id"`
	DisplayName string `json:"display_name"`
}

// VideoOut points the frontend's <video> element at the streaming endpoint.
type VideoOut struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

// CatalogHandler serves the Drive-backed patient/class/video hierarchy.
type CatalogHandler struct {
	catalog *drive.Catalog
	log     *zap.Logger
}

// NewCatalogHandler returns a handler over the given catalog.
func NewCatalogHandler(catalog *drive.Catalog, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

// ListPatients handles GET /api/patients.
func (h *CatalogHandler) ListPatients(c *gin.Context) {
	names := h.catalog.ListPatients(c.Request.Context())

	out := make([]PatientOut, 0, len(names))
	for _, name := range names {
		out = append(out, PatientOut{PatientID: name, DisplayName: name})
	}
	c.JSON(http.StatusOK, out)
}

// ListClasses handles GET /api/patients/:patient_id/classes.
// An unknown patient and a patient without class folders are indistinguishable
// here; both come back as 404.
func (h *CatalogHandler) ListClasses(c *gin.Context) {
	patientID := c.Param("patient_id")

	classes := h.catalog.ListClasses(c.Request.Context(), patientID)
	if len(classes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Patient or classes not found"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ListVideos handles GET /api/patients/:patient_id/classes/:class_id/videos.
// Unlike classes, an empty result is served as an empty array, never a 404,
// so the UI can show "No sequences".
func (h *CatalogHandler) ListVideos(c *gin.Context) {
	patientID := c.Param("patient_id")
	classID := c.Param("class_id")

	videos := h.catalog.ListVideos(c.Request.Context(), patientID, classID)

	out := make([]VideoOut, 0, len(videos))
	for _, v := range videos {
		out = append(out, VideoOut{
			FileName: v.FileName,
			URL:      "/api/videos/" + v.FileID,
		})
	}
	c.JSON(http.StatusOK, out)
}

// StreamVideo handles GET /api/videos/:file_id. Bytes are relayed to the
// client as they arrive from Drive; if the fetch fails mid-stream the body
// simply ends early.
func (h *CatalogHandler) StreamVideo(c *gin.Context) {
	fileID := c.Param("file_id")

	c.Header("Content-Type", "video/mp4")
	c.Status(http.StatusOK)

	h.catalog.StreamFile(c.Request.Context(), fileID, drive.DefaultChunkSize, func(chunk []byte) bool {
		if _, err := c.Writer.Write(chunk); err != nil {
			return false
		}
		c.Writer.Flush()
		return true
	})
}
