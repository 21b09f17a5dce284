package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/redis/go-redis/v9"
)

// Period selects the reporting window for trend and revenue series.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ErrInvalidPeriod is returned before any query runs when the period
// selector is not one of week, month or year.
var ErrInvalidPeriod = errors.New("invalid period")

const (
	statsCacheKey      = "dashboard:stats"
	statsCacheTTL      = 30 * time.Second
	recentPerSource    = 5
	activityFeedLimit  = 10
	activityDateLayout = "Jan 02, 2006"
)

type DashboardService struct {
	repo  models.DashboardRepo
	cache *redis.Client
	nowFn func() time.Time
}

// NewDashboardService builds the aggregation engine. cache may be nil, in
// which case every stats request hits MongoDB directly.
func NewDashboardService(repo models.DashboardRepo, cache *redis.Client) *DashboardService {
	return &DashboardService{
		repo:  repo,
		cache: cache,
		nowFn: time.Now,
	}
}

// Stats returns the four dashboard summary counts.
//
// The counts are four independent queries, not one snapshot: a write landing
// between them can leave the totals mutually inconsistent. That is accepted
// for a dashboard read and intentionally not papered over with a transaction.
func (ds *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	if ds.cache != nil {
		if raw, err := ds.cache.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var cached models.DashboardStats
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	at := ds.nowFn()

	totalBookings, err := ds.repo.CountBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %v", err)
	}
	activeEvents, err := ds.repo.CountUpcomingEvents(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming events: %v", err)
	}
	totalShows, err := ds.repo.CountLiveShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count live shows: %v", err)
	}
	currentGuests, err := ds.repo.CountOccupiedBookings(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("failed to count occupied bookings: %v", err)
	}

	stats := &models.DashboardStats{
		TotalBookings: totalBookings,
		ActiveEvents:  activeEvents,
		TotalShows:    totalShows,
		CurrentGuests: currentGuests,
	}

	if ds.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			// best effort; a failed write just means the next request queries again
			ds.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL)
		}
	}

	return stats, nil
}

// BookingTrends returns one gap-filled point per bucket from the window
// start through the current bucket, counting all bookings.
func (ds *DashboardService) BookingTrends(ctx context.Context, period Period) ([]models.TrendPoint, error) {
	return ds.trendSeries(ctx, period, nil)
}

// Revenue is the same series restricted to confirmed and completed
// bookings, projected down to date and revenue.
func (ds *DashboardService) Revenue(ctx context.Context, period Period) ([]models.RevenuePoint, error) {
	series, err := ds.trendSeries(ctx, period, []string{models.BookingConfirmed, models.BookingCompleted})
	if err != nil {
		return nil, err
	}

	points := make([]models.RevenuePoint, len(series))
	for i, p := range series {
		points[i] = models.RevenuePoint{Date: p.Date, Revenue: p.Revenue}
	}
	return points, nil
}

// trendSeries is the shared bucketer behind BookingTrends and Revenue: group
// matching bookings by bucket label in MongoDB, then re-walk the window so
// every bucket is present even when no booking fell into it.
func (ds *DashboardService) trendSeries(ctx context.Context, period Period, statuses []string) ([]models.TrendPoint, error) {
	at := ds.nowFn()

	w, err := periodWindow(period, at)
	if err != nil {
		return nil, err
	}

	buckets, err := ds.repo.BookingBucketsSince(ctx, w.start, w.mongoFmt, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking buckets: %v", err)
	}

	byLabel := make(map[string]models.TrendBucket, len(buckets))
	for _, b := range buckets {
		byLabel[b.Label] = b
	}

	labels := w.labels(at)
	series := make([]models.TrendPoint, 0, len(labels))
	for _, label := range labels {
		point := models.TrendPoint{Date: label}
		if b, ok := byLabel[label]; ok {
			point.Bookings = b.Count
			point.Revenue = b.Revenue
		}
		series = append(series, point)
	}

	return series, nil
}

// RecentActivities merges the newest bookings and events into a single feed,
// newest first, capped at activityFeedLimit entries. The per-source caps are
// independent: fewer than five of either just yields a shorter feed.
func (ds *DashboardService) RecentActivities(ctx context.Context) ([]models.Activity, error) {
	bookings, err := ds.repo.RecentBookings(ctx, recentPerSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent bookings: %v", err)
	}
	events, err := ds.repo.RecentEvents(ctx, recentPerSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent events: %v", err)
	}

	activities := make([]models.Activity, 0, len(bookings)+len(events))
	for _, b := range bookings {
		activities = append(activities, models.Activity{
			Type:        "booking",
			Time:        b.CreatedAt,
			Description: fmt.Sprintf("New booking for %s on %s at %s", b.Service, b.Date.Format(activityDateLayout), b.Time),
			Status:      b.Status,
		})
	}
	for _, e := range events {
		activities = append(activities, models.Activity{
			Type:        "event",
			Time:        e.CreatedAt,
			Description: fmt.Sprintf("New %s event: %s on %s at %s", e.Category, e.Title, e.Date.Format(activityDateLayout), e.Time),
			Status:      "active",
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Time.After(activities[j].Time)
	})
	if len(activities) > activityFeedLimit {
		activities = activities[:activityFeedLimit]
	}

	return activities, nil
}

// bucketWindow describes one reporting window: where it starts, how buckets
// are labelled, and whether the walk advances by month instead of day.
type bucketWindow struct {
	start    time.Time
	layout   string // Go layout for bucket labels
	mongoFmt string // $dateToString format handed to the repo
	byMonth  bool
}

func periodWindow(period Period, at time.Time) (bucketWindow, error) {
	switch period {
	case PeriodWeek:
		return bucketWindow{
			start:    now.With(at.AddDate(0, 0, -7)).BeginningOfDay(),
			layout:   "2006-01-02",
			mongoFmt: "%Y-%m-%d",
		}, nil
	case PeriodMonth:
		return bucketWindow{
			start:    now.With(at.AddDate(0, 0, -30)).BeginningOfDay(),
			layout:   "2006-01-02",
			mongoFmt: "%Y-%m-%d",
		}, nil
	case PeriodYear:
		return bucketWindow{
			start:    now.With(at.AddDate(0, -12, 0)).BeginningOfMonth(),
			layout:   "2006-01",
			mongoFmt: "%Y-%m",
			byMonth:  true,
		}, nil
	default:
		return bucketWindow{}, ErrInvalidPeriod
	}
}

// labels walks bucket starts from the window start while they are
// same-or-before until at the bucket's own granularity, so the series ends
// exactly at the current bucket with no extra or missing tail entry.
func (w bucketWindow) labels(until time.Time) []string {
	end := now.With(until).BeginningOfDay()
	step := func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
	if w.byMonth {
		end = now.With(until).BeginningOfMonth()
		step = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	}

	var labels []string
	for cur := w.start; !cur.After(end); cur = step(cur) {
		labels = append(labels, cur.Format(w.layout))
	}
	return labels
}
