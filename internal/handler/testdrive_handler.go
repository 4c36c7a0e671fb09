package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/premium-auto/showroom-api/internal/dto"
	"github.com/premium-auto/showroom-api/internal/models"
	"github.com/premium-auto/showroom-api/internal/repository"
	"github.com/premium-auto/showroom-api/internal/service"
)

type TestDriveHandler struct {
	svc service.TestDriveService
}

func NewTestDriveHandler(svc service.TestDriveService) *TestDriveHandler {
	return &TestDriveHandler{svc: svc}
}

func (h *TestDriveHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/test-drive")
	g.POST("", h.CreateTestDrive)
	g.GET("", h.ListTestDrives)
	g.GET("/stats/overview", h.GetStats)
	g.GET("/:id", h.GetTestDrive)
	g.PUT("/:id/status", h.UpdateStatus)
}

func (h *TestDriveHandler) CreateTestDrive(c echo.Context) error {
	var req dto.CreateTestDriveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error("Invalid request body"))
	}

	if anyEmpty(req.Name, req.Email, req.Phone, req.PreferredDate, req.PreferredTime, req.VehicleModel) {
		return c.JSON(http.StatusBadRequest, dto.Error(
			"Please provide all required fields: name, email, phone, preferredDate, preferredTime, vehicleModel"))
	}

	date, err := parseDate(req.PreferredDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error("Invalid preferred date"))
	}

	td := &models.TestDrive{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: date,
		PreferredTime: req.PreferredTime,
		VehicleModel:  req.VehicleModel,
		Message:       req.Message,
		IPAddress:     c.RealIP(),
	}

	saved, err := h.svc.SubmitTestDrive(c.Request().Context(), td)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.Is(err, service.ErrDateInPast):
			return c.JSON(http.StatusBadRequest, dto.Error("Preferred date must be today or in the future"))
		case errors.Is(err, service.ErrDuplicateTestDrive):
			return c.JSON(http.StatusConflict, dto.Error(
				"You already have a test drive request for this date. "+
					"Please choose a different date or contact us to modify your existing request."))
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Status:  "error",
				Message: "Validation failed",
				Errors:  verr.Messages,
			})
		default:
			log.Printf("[testdrive] submission failed: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.Error(
				"Internal server error. Please try again later."))
		}
	}

	return c.JSON(http.StatusCreated, dto.SuccessMessage(
		"Test drive request submitted successfully! We will contact you within 24 hours to confirm your appointment.",
		dto.ToTestDriveCreated(saved)))
}

func (h *TestDriveHandler) ListTestDrives(c echo.Context) error {
	filter := repository.TestDriveFilter{Status: c.QueryParam("status")}
	page, limit := pageParams(c)

	testDrives, total, err := h.svc.ListTestDrives(c.Request().Context(), filter, page, limit)
	if err != nil {
		log.Printf("[testdrive] list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
	}

	items := make([]dto.TestDriveResponse, len(testDrives))
	for i := range testDrives {
		items[i] = dto.ToTestDriveResponse(&testDrives[i])
	}

	return c.JSON(http.StatusOK, dto.Success(dto.TestDriveList{
		TestDrives: items,
		Pagination: dto.NewPagination(page, limit, total),
	}))
}

func (h *TestDriveHandler) GetTestDrive(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error("Invalid test drive ID"))
	}

	td, err := h.svc.GetTestDrive(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTestDriveNotFound) {
			return c.JSON(http.StatusNotFound, dto.Error("Test drive request not found"))
		}
		log.Printf("[testdrive] get failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
	}

	return c.JSON(http.StatusOK, dto.Success(dto.ToTestDriveResponse(td)))
}

func (h *TestDriveHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error("Invalid test drive ID"))
	}

	var req dto.UpdateTestDriveStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error("Invalid request body"))
	}

	if !models.ValidTestDriveStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, dto.Error(
			"Invalid status. Must be one of: pending, confirmed, completed, cancelled"))
	}

	td, err := h.svc.UpdateTestDriveStatus(c.Request().Context(), uint(id), models.TestDriveStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrTestDriveNotFound) {
			return c.JSON(http.StatusNotFound, dto.Error("Test drive request not found"))
		}
		log.Printf("[testdrive] status update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
	}

	return c.JSON(http.StatusOK, dto.SuccessMessage(
		"Test drive status updated successfully", dto.ToTestDriveResponse(td)))
}

func (h *TestDriveHandler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		log.Printf("[testdrive] stats failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
	}
	return c.JSON(http.StatusOK, dto.Success(stats))
}

// parseDate accepts the date-only form the booking form sends, plus full
// timestamps for API clients.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
