package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/sunside/internal/domain/imagesearch"
	"github.com/yanqian/sunside/internal/domain/seatadvisor"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	advisorSvc seatadvisor.Service
	imagesSvc  imagesearch.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(advisorSvc seatadvisor.Service, imagesSvc imagesearch.Service, logger *slog.Logger) *Handler {
	return &Handler{
		advisorSvc: advisorSvc,
		imagesSvc:  imagesSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// Recommend returns the window side verdict for a flight.
func (h *Handler) Recommend(c *gin.Context) {
	var req seatadvisor.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("request body must be a valid recommendation request", err))
		return
	}

	resp, err := h.advisorSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomain(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Airports searches the airport table by code, name or city.
func (h *Handler) Airports(c *gin.Context) {
	items := h.advisorSvc.Airports(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"airports": items})
}

// Landmarks lists every known landmark.
func (h *Handler) Landmarks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"landmarks": h.advisorSvc.Landmarks(c.Request.Context())})
}

// LandmarkImages returns photos for a landmark query. Upstream failures yield an empty list.
func (h *Handler) LandmarkImages(c *gin.Context) {
	resp, err := h.imagesSvc.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		abortWithError(c, fromDomain(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
