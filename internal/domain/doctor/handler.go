package doctor

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
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
	api.GET("/doctor_schedule", h.GetSchedule)
	api.PUT("/doctor_schedule", h.UpdateSchedule)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.svc.List(c.Request().Context(), c.QueryParam("search"), c.QueryParam("specialty"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if doctors == nil {
		doctors = []*Doctor{}
	}
	return c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	}
	profile, err := h.svc.Get(c.Request().Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) GetSchedule(c echo.Context) error {
	doctorID, err := requiredDoctorID(c)
	if err != nil {
		return err
	}
	schedules, err := h.svc.GetSchedule(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if schedules == nil {
		schedules = []*Schedule{}
	}
	return c.JSON(http.StatusOK, schedules)
}

func (h *Handler) UpdateSchedule(c echo.Context) error {
	doctorID, err := requiredDoctorID(c)
	if err != nil {
		return err
	}
	var entries map[string]ScheduleEntry
	if err := c.Bind(&entries); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrInvalidScheduleData.Error())
	}

	err = h.svc.ReplaceSchedule(c.Request().Context(), doctorID, entries)
	switch {
	case errors.Is(err, ErrInvalidScheduleData),
		errors.Is(err, ErrInvalidScheduleItem),
		errors.Is(err, ErrInvalidTimeFormat):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Schedule updated successfully"})
}

func requiredDoctorID(c echo.Context) (int64, error) {
	raw := c.QueryParam("doctor_id")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Doctor ID is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Doctor ID is required")
	}
	return id, nil
}
