package database

import (
	"time"
)

type Restaurant struct {
	RestID   int64
	Name     string
	Type     string
	Slug     string
	Location string
	Quarter  *string
}

type Item struct {
	ItemID     int64
	Name       string
	Type       string // "food" or "drink"
	CategoryID *int64
	RestID     int64
}

type Category struct {
	CategoryID int64
	Name       string
}

// Price is one dated price observation for an item. The natural key is
// (rest_id, item_id, date, source); re-inserting the same tuple is a no-op.
type Price struct {
	PriceID int64
	Date    time.Time
	Value   float64
	Source  string
	ItemID  int64
	RestID  int64
	UserID  *int64
}

// PriceReport is a user-submitted price correction. Unlike Price rows these
// are not deduplicated.
type PriceReport struct {
	ReportID   int64
	Status     string
	Price      float64
	ReportDate time.Time
	ItemID     int64
	RestID     int64
	UserID     *int64
}
