package appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments", h.CreateAppointment)
	api.GET("/appointments", h.ListPatientAppointments)
	api.DELETE("/appointments/:id", h.CancelAppointment)
	api.GET("/doctor_appointments", h.ListDoctorAppointments)
}

type createRequest struct {
	PatientID int64  `json:"patient_id"`
	DoctorID  int64  `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.svc.Create(c.Request().Context(), req.PatientID, req.DoctorID, req.Date, req.Time)
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidDateTime),
		errors.Is(err, ErrSlotUnavailable),
		errors.Is(err, ErrUnknownPatient),
		errors.Is(err, ErrUnknownDoctor):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":        "Appointment created successfully",
		"appointment_id": id,
	})
}

func (h *Handler) ListPatientAppointments(c echo.Context) error {
	userID, err := requiredParam(c, "user_id", "User ID is required")
	if err != nil {
		return err
	}
	views, err := h.svc.ListByPatient(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if views == nil {
		views = []*PatientView{}
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) ListDoctorAppointments(c echo.Context) error {
	doctorID, err := requiredParam(c, "doctor_id", "Doctor ID is required")
	if err != nil {
		return err
	}
	views, err := h.svc.ListByDoctor(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if views == nil {
		views = []*DoctorView{}
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) CancelAppointment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	}

	err = h.svc.Cancel(c.Request().Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Appointment cancelled successfully"})
}

func requiredParam(c echo.Context, name, message string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, message)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, message)
	}
	return id, nil
}
