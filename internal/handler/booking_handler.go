package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/premium-auto/showroom-api/internal/dto"
	"github.com/premium-auto/showroom-api/internal/models"
	"github.com/premium-auto/showroom-api/internal/repository"
	"github.com/premium-auto/showroom-api/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/booking")
	g.POST("", h.CreateBooking)
	g.GET("", h.ListBookings)
	g.GET("/stats/overview", h.GetStats)
	g.GET("/search/:bookingId", h.SearchByBookingID)
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id/status", h.UpdateStatus)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error("Invalid request body"))
	}

	if anyEmpty(req.Name, req.Email, req.Phone, req.Address, req.Model, req.Color) {
		return c.JSON(http.StatusBadRequest, dto.Error(
			"Please provide all required fields: name, email, phone, address, model, color"))
	}

	booking := &models.Booking{
		Name:                   req.Name,
		Email:                  req.Email,
		Phone:                  req.Phone,
		Address:                req.Address,
		Model:                  req.Model,
		Color:                  req.Color,
		Variant:                req.Variant,
		AdditionalRequirements: req.AdditionalRequirements,
		IPAddress:              c.RealIP(),
	}

	saved, err := h.svc.SubmitBooking(c.Request().Context(), booking)
	if err != nil {
		var dup *service.DuplicateBookingError
		var verr *models.ValidationError
		switch {
		case errors.As(err, &dup):
			return c.JSON(http.StatusConflict, dto.ErrorResponse{
				Status: "error",
				Message: "You already have an active booking for " + dup.Model +
					". Please contact us to modify your existing booking or choose a different model.",
				ExistingBookingID: dup.BookingID,
			})
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Status:  "error",
				Message: "Validation failed",
				Errors:  verr.Messages,
			})
		default:
			log.Printf("[booking] submission failed: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.Error(
				"Internal server error. Please try again later."))
		}
	}

	return c.JSON(http.StatusCreated, dto.SuccessMessage(
		"Booking request submitted successfully! We will contact you within 24 hours to discuss further details.",
		dto.ToBookingCreated(saved)))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	filter := repository.BookingFilter{
		Status: c.QueryParam("status"),
		Model:  c.QueryParam("model"),
	}
	page, limit := pageParams(c)

	bookings, total, err := h.svc.ListBookings(c.Request().Context(), filter, page, limit)
	if err != nil {
		log.Printf("[booking] list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
	}

	items := make([]dto.BookingListItem, len(bookings))
	for i := range bookings {
		items[i] = dto.ToBookingListItem(&bookings[i])
	}

	return c.JSON(http.StatusOK, dto.Success(dto.BookingList{
		Bookings:   items,
		Pagination: dto.NewPagination(page, limit, total),
	}))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error("Invalid booking ID"))
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, dto.Error("Booking not found"))
		}
		log.Printf("[booking] get failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
	}

	return c.JSON(http.StatusOK, dto.Success(dto.ToBookingResponse(booking)))
}

func (h *BookingHandler) SearchByBookingID(c echo.Context) error {
	booking, err := h.svc.GetBookingByCode(c.Request().Context(), c.Param("bookingId"))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, dto.Error("Booking not found with this booking ID"))
		}
		log.Printf("[booking] search failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
	}

	// Customer-facing lookup: sales notes stay internal.
	return c.JSON(http.StatusOK, dto.Success(dto.ToBookingListItem(booking)))
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error("Invalid booking ID"))
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error("Invalid request body"))
	}

	if !models.ValidBookingStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, dto.Error(
			"Invalid status. Must be one of: pending, confirmed, processing, delivered, cancelled"))
	}

	booking, err := h.svc.UpdateBookingStatus(
		c.Request().Context(), uint(id), models.BookingStatus(req.Status), req.SalesNotes, req.AssignedTo)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, dto.Error("Booking not found"))
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Status:  "error",
				Message: "Validation failed",
				Errors:  verr.Messages,
			})
		default:
			log.Printf("[booking] status update failed: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
		}
	}

	return c.JSON(http.StatusOK, dto.SuccessMessage("Booking updated successfully", dto.ToBookingResponse(booking)))
}

func (h *BookingHandler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		log.Printf("[booking] stats failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
	}
	return c.JSON(http.StatusOK, dto.Success(stats))
}

func anyEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
