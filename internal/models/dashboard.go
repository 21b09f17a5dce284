package models

import "time"

type DashboardStats struct {
	TotalBookings int64 `json:"totalBookings"`
	ActiveEvents  int64 `json:"activeEvents"`
	TotalShows    int64 `json:"totalShows"`
	CurrentGuests int64 `json:"currentGuests"`
}

// TrendPoint is one gap-filled bucket of the booking-trends series.
type TrendPoint struct {
	Date     string  `json:"date"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// TrendBucket is the raw group produced by the aggregation pipeline, keyed
// by the $dateToString label of the booking's creation time.
type TrendBucket struct {
	Label   string  `bson:"_id"`
	Count   int     `bson:"count"`
	Revenue float64 `bson:"revenue"`
}

type Activity struct {
	Type        string    `json:"type"`
	Time        time.Time `json:"time"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}
