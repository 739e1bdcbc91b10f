package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/sunside/internal/domain/catalog"
	"github.com/yanqian/sunside/internal/domain/imagesearch"
	"github.com/yanqian/sunside/internal/domain/seatadvisor"
	"github.com/yanqian/sunside/internal/infra/config"
	apperrors "github.com/yanqian/sunside/pkg/errors"
)

func TestRouter_RecommendSuccess(t *testing.T) {
	resp := seatadvisor.Response{
		Recommendation: seatadvisor.RightSide,
		Reason:         "The sun will be on the right side of the aircraft.",
		FlightDuration: 420,
		DepartureTime:  "12:00 PM",
		ArrivalTime:    "07:00 PM",
	}
	advisor := &stubAdvisor{
		recommendFn: func(ctx context.Context, req seatadvisor.Request) (seatadvisor.Response, error) {
			require.Equal(t, "JFK", req.DepartureIATA)
			require.Equal(t, "LHR", req.ArrivalIATA)
			require.Equal(t, int64(1718971200000), req.DepartureTimestamp)
			require.Equal(t, 420, req.FlightDurationMinutes)
			return resp, nil
		},
	}

	body := `{"departureIata":"JFK","arrivalIata":"LHR","departureTimestamp":1718971200000,"flightDurationMinutes":420}`
	recorder := performRequest(http.MethodPost, "/api/v1/recommendations", body, newRouterUnderTest(t, advisor, &stubImages{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Right Side", got["recommendation"])
	require.Equal(t, "12:00 PM", got["departureTime"])
	require.EqualValues(t, 420, got["flightDuration"])
}

func TestRouter_RecommendInvalidJSON(t *testing.T) {
	recorder := performRequest(http.MethodPost, "/api/v1/recommendations", `{"departureIata":123}`, newRouterUnderTest(t, &stubAdvisor{}, &stubImages{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_RecommendUnknownAirport(t *testing.T) {
	advisor := &stubAdvisor{
		recommendFn: func(ctx context.Context, req seatadvisor.Request) (seatadvisor.Response, error) {
			return seatadvisor.Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, `invalid airport codes: "XXX"`, nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/recommendations", `{"departureIata":"XXX","arrivalIata":"LHR","departureTimestamp":1}`, newRouterUnderTest(t, advisor, &stubImages{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Equal(t, `invalid airport codes: "XXX"`, errBody["error"]["message"])
}

func TestRouter_RecommendInternalErrorHidesDetail(t *testing.T) {
	advisor := &stubAdvisor{
		recommendFn: func(ctx context.Context, req seatadvisor.Request) (seatadvisor.Response, error) {
			return seatadvisor.Response{}, apperrors.Wrap(apperrors.CodeInternal, "non-finite sun position", nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/recommendations", `{"departureIata":"JFK","arrivalIata":"LHR","departureTimestamp":1}`, newRouterUnderTest(t, advisor, &stubImages{}))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "internal_error", errBody["error"]["code"])
	require.Equal(t, "something went wrong", errBody["error"]["message"])
}

func TestRouter_RecoversPanics(t *testing.T) {
	advisor := &stubAdvisor{
		recommendFn: func(ctx context.Context, req seatadvisor.Request) (seatadvisor.Response, error) {
			panic("boom")
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/recommendations", `{}`, newRouterUnderTest(t, advisor, &stubImages{}))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "internal_error", errBody["error"]["code"])
}

func TestRouter_Airports(t *testing.T) {
	advisor := &stubAdvisor{
		airports: []catalog.Airport{{IATA: "LHR", Name: "Heathrow Airport", City: "London"}},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/airports?q=lon", "", newRouterUnderTest(t, advisor, &stubImages{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "lon", advisor.lastQuery)

	var got struct {
		Airports []catalog.Airport `json:"airports"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got.Airports, 1)
	require.Equal(t, "LHR", got.Airports[0].IATA)
}

func TestRouter_Landmarks(t *testing.T) {
	advisor := &stubAdvisor{
		landmarks: []catalog.Landmark{{Name: "Mount Fuji", Type: catalog.Mountain}},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/landmarks", "", newRouterUnderTest(t, advisor, &stubImages{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"Mount Fuji"`)
}

func TestRouter_LandmarkImages(t *testing.T) {
	images := &stubImages{
		searchFn: func(ctx context.Context, query string) (imagesearch.Response, error) {
			require.Equal(t, "Mount Fuji", query)
			return imagesearch.Response{Images: []imagesearch.Image{{ID: "p1"}}}, nil
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/landmarks/images?query=Mount+Fuji", "", newRouterUnderTest(t, &stubAdvisor{}, images))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got imagesearch.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got.Images, 1)
}

func TestRouter_LandmarkImagesMissingQuery(t *testing.T) {
	images := &stubImages{
		searchFn: func(ctx context.Context, query string) (imagesearch.Response, error) {
			return imagesearch.Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "query parameter is required", nil)
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/landmarks/images", "", newRouterUnderTest(t, &stubAdvisor{}, images))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "query parameter is required", errBody["error"]["message"])
}

func TestRouter_HealthAndRequestID(t *testing.T) {
	server := newRouterUnderTest(t, &stubAdvisor{}, &stubImages{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.AllowedOrigins = []string{"https://other.example", "https://app.example"}
	server := NewRouter(cfg, NewHandler(&stubAdvisor{}, &stubImages{}, newTestLogger()))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1}
	server := NewRouter(cfg, NewHandler(&stubAdvisor{}, &stubImages{}, newTestLogger()))

	first := performRequest(http.MethodGet, "/healthz", "", server)
	require.Equal(t, http.StatusOK, first.Code)

	second := performRequest(http.MethodGet, "/healthz", "", server)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	errBody := decodeErrorBody(t, second.Body.Bytes())
	require.Equal(t, "rate_limit_exceeded", errBody["error"]["code"])
}

func TestRouter_Gzip(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.Gzip = true
	landmarks := make([]catalog.Landmark, 0, 50)
	for i := 0; i < 50; i++ {
		landmarks = append(landmarks, catalog.Landmark{Name: "Grand Canyon", Type: catalog.NaturalWonder})
	}
	server := NewRouter(cfg, NewHandler(&stubAdvisor{landmarks: landmarks}, &stubImages{}, newTestLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/landmarks", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	reader, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(plain), "Grand Canyon"))
}

func performRequest(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

func newRouterUnderTest(t *testing.T, advisor seatadvisor.Service, images imagesearch.Service) *http.Server {
	t.Helper()
	handler := NewHandler(advisor, images, newTestLogger())
	return NewRouter(testConfig(), handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubAdvisor struct {
	recommendFn func(ctx context.Context, req seatadvisor.Request) (seatadvisor.Response, error)
	airports    []catalog.Airport
	landmarks   []catalog.Landmark
	lastQuery   string
}

func (s *stubAdvisor) Recommend(ctx context.Context, req seatadvisor.Request) (seatadvisor.Response, error) {
	if s.recommendFn != nil {
		return s.recommendFn(ctx, req)
	}
	return seatadvisor.Response{}, nil
}

func (s *stubAdvisor) Airports(_ context.Context, query string) []catalog.Airport {
	s.lastQuery = query
	return s.airports
}

func (s *stubAdvisor) Landmarks(context.Context) []catalog.Landmark {
	return s.landmarks
}

type stubImages struct {
	searchFn func(ctx context.Context, query string) (imagesearch.Response, error)
}

func (s *stubImages) Search(ctx context.Context, query string) (imagesearch.Response, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return imagesearch.Response{Images: []imagesearch.Image{}}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
