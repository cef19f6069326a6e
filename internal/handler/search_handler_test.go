package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/makanlab/restaurant-locator/internal/dto"
	"github.com/makanlab/restaurant-locator/internal/places"
	"github.com/makanlab/restaurant-locator/internal/service"
)

type stubService struct {
	results []dto.RestaurantResult
	err     error
	calls   int
}

func (s *stubService) Search(ctx context.Context, query string) ([]dto.RestaurantResult, error) {
	s.calls++
	return s.results, s.err
}

func doSearch(t *testing.T, svc Searcher, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = NewSearchHandler(svc).Search(c)
	return rec
}

func TestSearchHandler_InvalidPayload(t *testing.T) {
	stub := &stubService{}
	rec := doSearch(t, stub, "{")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if stub.calls != 0 {
		t.Fatalf("service must not run for malformed payloads")
	}
}

func TestSearchHandler_EmptyQuery(t *testing.T) {
	rec := doSearch(t, &stubService{err: service.ErrEmptyQuery}, `{"query":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearchHandler_UpstreamError(t *testing.T) {
	stub := &stubService{err: &places.UpstreamError{StatusCode: http.StatusForbidden, Status: "PERMISSION_DENIED", Message: "API key not valid"}}
	rec := doSearch(t, stub, `{"query":"laksa"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if payload.Status != "error" || !strings.Contains(payload.Message, "PERMISSION_DENIED") {
		t.Fatalf("expected upstream detail in response, got %+v", payload)
	}
}

func TestSearchHandler_UnknownError(t *testing.T) {
	rec := doSearch(t, &stubService{err: errors.New("boom")}, `{"query":"laksa"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestSearchHandler_Success(t *testing.T) {
	rating := 4.3
	price := 1
	stub := &stubService{results: []dto.RestaurantResult{
		{Name: "328 Katong Laksa", Address: "51 East Coast Rd, Singapore", Rating: &rating, PriceLevel: &price},
		{Name: "Sungei Road Laksa", Address: "27 Jalan Berseh, Singapore"},
	}}

	rec := doSearch(t, stub, `{"query":"laksa"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Status string `json:"status"`
		Data   struct {
			Count   int                    `json:"count"`
			Results []dto.RestaurantResult `json:"results"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if payload.Status != "success" || payload.Data.Count != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Data.Results[0].Name != "328 Katong Laksa" {
		t.Fatalf("unexpected ordering: %+v", payload.Data.Results)
	}
	if payload.Data.Results[1].Rating != nil || payload.Data.Results[1].PriceLevel != nil {
		t.Fatalf("absent optional fields must stay null: %+v", payload.Data.Results[1])
	}
}

func TestSearchHandler_NoResults(t *testing.T) {
	rec := doSearch(t, &stubService{results: []dto.RestaurantResult{}}, `{"query":"michelin star"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty results, got %d", rec.Code)
	}

	var payload struct {
		Status string `json:"status"`
		Data   struct {
			Count   int             `json:"count"`
			Results json.RawMessage `json:"results"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if payload.Status != "success" || payload.Data.Count != 0 {
		t.Fatalf("empty result set must still be a success: %+v", payload)
	}
	if string(payload.Data.Results) != "[]" {
		t.Fatalf("expected empty json array, got %s", payload.Data.Results)
	}
}
