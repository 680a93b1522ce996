package availability

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coworking/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/availability/check", h.Check)
	rg.POST("/availability/bulk", h.Bulk)
	rg.GET("/spaces/:id/availability", h.Day)
	rg.GET("/spaces/:id/availability/realtime", h.RealTime)
}

func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, CodeValidation, "Invalid request body")
		return
	}

	result := h.service.CheckAvailability(c.Request.Context(), req.SpaceID,
		TimeInterval{Start: req.StartTime, End: req.EndTime},
		CheckOptions{ExcludeBookingID: req.ExcludeBookingID})

	// Conflicts and rejections are results, not errors.
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Day(c *gin.Context) {
	spaceID := c.Param("id")
	date, ok := h.parseDate(c)
	if !ok {
		return
	}

	slots, err := h.service.GetDayAvailability(c.Request.Context(), spaceID, date)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, CodeCheckFailed, "Could not load availability")
		return
	}

	response.Success(c, http.StatusOK, DayResponse{
		SpaceID: spaceID,
		Date:    date.Format(dateLayout),
		Slots:   slots,
	})
}

func (h *Handler) Bulk(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, CodeValidation, "Invalid request body")
		return
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, h.service.Rules().Location)
	if err != nil {
		response.Error(c, http.StatusBadRequest, CodeValidation, "Invalid date, expected YYYY-MM-DD")
		return
	}

	grids := h.service.GetBulkAvailability(c.Request.Context(), req.SpaceIDs, date)
	response.Success(c, http.StatusOK, gin.H{"date": req.Date, "spaces": grids})
}

func (h *Handler) RealTime(c *gin.Context) {
	spaceID := c.Param("id")
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, CodeValidation, "Invalid start, expected RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, CodeValidation, "Invalid end, expected RFC3339")
		return
	}

	available := h.service.CheckRealTimeAvailability(c.Request.Context(), spaceID,
		TimeInterval{Start: start, End: end})
	response.Success(c, http.StatusOK, RealTimeResponse{SpaceID: spaceID, Available: available})
}

func (h *Handler) parseDate(c *gin.Context) (time.Time, bool) {
	date, err := time.ParseInLocation(dateLayout, c.Query("date"), h.service.Rules().Location)
	if err != nil {
		response.Error(c, http.StatusBadRequest, CodeValidation, "Invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
