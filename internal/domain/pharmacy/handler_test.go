package pharmacy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_CreatePharmacy(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()

	body := `{"name":"City Pharmacy","address":"12 Main St","phone_number":"555-0101"}`
	req := httptest.NewRequest(http.MethodPost, "/api/pharmacies", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePharmacy(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["message"] != "Pharmacy added successfully" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
	if _, ok := resp["pharmacy_id"]; !ok {
		t.Error("expected pharmacy_id in response")
	}
}

func TestHandler_CreatePharmacy_MissingFields(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/pharmacies", strings.NewReader(`{"name":"City Pharmacy"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePharmacy(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing required fields") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_GetPharmacy(t *testing.T) {
	svc, repo := newTestService()
	repo.pharmacies[1] = &Pharmacy{ID: 1, Name: "City Pharmacy", Address: "12 Main St", PhoneNumber: "555-0101"}
	h := NewHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/pharmacies/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.GetPharmacy(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["name"] != "City Pharmacy" {
		t.Errorf("unexpected name: %v", resp["name"])
	}
}

func TestHandler_GetPharmacy_NotFound(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/pharmacies/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := h.GetPharmacy(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Pharmacy not found") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_UpdatePharmacy(t *testing.T) {
	svc, repo := newTestService()
	repo.pharmacies[1] = &Pharmacy{ID: 1, Name: "City Pharmacy", Address: "12 Main St", PhoneNumber: "555-0101"}
	h := NewHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPut, "/api/pharmacies/1", strings.NewReader(`{"address":"99 Elm St"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdatePharmacy(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Pharmacy updated successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if repo.pharmacies[1].Address != "99 Elm St" {
		t.Errorf("address not updated: %s", repo.pharmacies[1].Address)
	}
	if repo.pharmacies[1].Name != "City Pharmacy" {
		t.Error("name should be unchanged")
	}
}
