package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/luxstay/internal/middleware"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/joshua-takyi/luxstay/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	stats   models.DashboardStats
	buckets []models.TrendBucket
	err     error
}

func (s *stubDashboardRepo) CountBookings(ctx context.Context) (int64, error) {
	return s.stats.TotalBookings, s.err
}

func (s *stubDashboardRepo) CountUpcomingEvents(ctx context.Context, from time.Time) (int64, error) {
	return s.stats.ActiveEvents, s.err
}

func (s *stubDashboardRepo) CountLiveShows(ctx context.Context) (int64, error) {
	return s.stats.TotalShows, s.err
}

func (s *stubDashboardRepo) CountOccupiedBookings(ctx context.Context, at time.Time) (int64, error) {
	return s.stats.CurrentGuests, s.err
}

func (s *stubDashboardRepo) BookingBucketsSince(ctx context.Context, since time.Time, dateFormat string, statuses []string) ([]models.TrendBucket, error) {
	return s.buckets, s.err
}

func (s *stubDashboardRepo) RecentBookings(ctx context.Context, limit int64) ([]*models.Booking, error) {
	return nil, s.err
}

func (s *stubDashboardRepo) RecentEvents(ctx context.Context, limit int64) ([]*models.Event, error) {
	return nil, s.err
}

func newDashboardRouter(repo *stubDashboardRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.NewDashboardService(repo, nil)

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))
	r.GET("/stats", GetDashboardStats(svc))
	r.GET("/booking-trends/:period", GetBookingTrends(svc))
	r.GET("/revenue/:period", GetRevenue(svc))
	r.GET("/recent-activities", GetRecentActivities(svc))
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetDashboardStats(t *testing.T) {
	repo := &stubDashboardRepo{stats: models.DashboardStats{
		TotalBookings: 12,
		ActiveEvents:  3,
		TotalShows:    4,
		CurrentGuests: 2,
	}}

	w := doGet(t, newDashboardRouter(repo), "/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, repo.stats, got)
}

func TestGetBookingTrendsInvalidPeriod(t *testing.T) {
	w := doGet(t, newDashboardRouter(&stubDashboardRepo{}), "/booking-trends/decade")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid period"}`, w.Body.String())
}

func TestGetRevenueInvalidPeriod(t *testing.T) {
	w := doGet(t, newDashboardRouter(&stubDashboardRepo{}), "/revenue/decade")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid period"}`, w.Body.String())
}

func TestGetBookingTrendsReturnsSeries(t *testing.T) {
	w := doGet(t, newDashboardRouter(&stubDashboardRepo{}), "/booking-trends/week")
	require.Equal(t, http.StatusOK, w.Code)

	var series []models.TrendPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	assert.Len(t, series, 8)
}

func TestGetRevenueReturnsSeries(t *testing.T) {
	w := doGet(t, newDashboardRouter(&stubDashboardRepo{}), "/revenue/week")
	require.Equal(t, http.StatusOK, w.Code)

	var series []models.RevenuePoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	assert.Len(t, series, 8)
}

func TestGetRecentActivitiesEmpty(t *testing.T) {
	w := doGet(t, newDashboardRouter(&stubDashboardRepo{}), "/recent-activities")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDashboardRepoFailureIsOpaque(t *testing.T) {
	repo := &stubDashboardRepo{err: errors.New("connection reset")}

	w := doGet(t, newDashboardRouter(repo), "/stats")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "connection reset")
}
