package api

import (
	"github.com/projekt-r/restorang/app/database"
)

const noMatchesMessage = "No matches found for your search."

type Handler struct {
	restaurantRepo database.RestaurantRepository
	categoryRepo   database.CategoryRepository
	itemRepo       database.ItemRepository
	priceRepo      database.PriceRepository
	reportRepo     database.ReportRepository
}

type reportRequest struct {
	Status     string  `json:"status"`
	Price      float64 `json:"price" binding:"required"`
	ReportDate string  `json:"report_date"`
	ItemID     int64   `json:"item_id" binding:"required"`
	RestID     int64   `json:"rest_id" binding:"required"`
	UserID     *int64  `json:"user_id"`
}

type priceRequest struct {
	Date   string  `json:"date"`
	Value  float64 `json:"value" binding:"required"`
	Source string  `json:"source"`
	ItemID int64   `json:"item_id" binding:"required"`
	RestID int64   `json:"rest_id" binding:"required"`
	UserID *int64  `json:"user_id"`
}
