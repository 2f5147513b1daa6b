package medicalrecord

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
	api.POST("/medical_records", h.AddRecord)
	api.GET("/medical_records", h.ListRecords)
	api.POST("/diagnoses", h.AddDiagnosis)
}

type addRecordRequest struct {
	PatientID   int64   `json:"patient_id"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	DoctorIDs   []int64 `json:"doctor_ids"`
}

func (h *Handler) AddRecord(c echo.Context) error {
	var req addRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.svc.Add(c.Request().Context(), req.PatientID, req.ImageURL, req.Description, req.DoctorIDs)
	switch {
	case errors.Is(err, ErrMissingFields):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Medical record added successfully",
		"record_id": id,
	})
}

func (h *Handler) ListRecords(c echo.Context) error {
	raw := c.QueryParam("user_id")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID is required")
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID is required")
	}

	views, err := h.svc.ListByPatient(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if views == nil {
		views = []*RecordView{}
	}
	return c.JSON(http.StatusOK, views)
}

type addDiagnosisRequest struct {
	RecordID  int64  `json:"record_id"`
	DoctorID  int64  `json:"doctor_id"`
	Diagnosis string `json:"diagnosis"`
}

func (h *Handler) AddDiagnosis(c echo.Context) error {
	var req addDiagnosisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.svc.AddDiagnosis(c.Request().Context(), req.RecordID, req.DoctorID, req.Diagnosis)
	switch {
	case errors.Is(err, ErrMissingFields):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "Diagnosis added successfully",
		"diagnosis_id": id,
	})
}
