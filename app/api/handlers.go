package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/projekt-r/restorang/app/database"
)

func NewHandler(restaurantRepo database.RestaurantRepository,
	categoryRepo database.CategoryRepository, itemRepo database.ItemRepository,
	priceRepo database.PriceRepository, reportRepo database.ReportRepository) *Handler {
	return &Handler{
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
		itemRepo:       itemRepo,
		priceRepo:      priceRepo,
		reportRepo:     reportRepo,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if restaurantCount, err := h.restaurantRepo.GetRestaurantCount(); err == nil {
		health["restaurants"] = restaurantCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{}

	if restaurantCount, err := h.restaurantRepo.GetRestaurantCount(); err == nil {
		stats["restaurants"] = restaurantCount
	}
	if itemCount, err := h.itemRepo.GetItemCount(); err == nil {
		stats["items"] = itemCount
	}
	if priceCount, err := h.priceRepo.GetPriceCount(); err == nil {
		stats["prices"] = priceCount
	}

	c.JSON(http.StatusOK, stats)
}

// ListRestaurants serves the restaurant catalog. At most one of the name,
// type and quarter query filters is applied, in that order of precedence.
func (h *Handler) ListRestaurants(c *gin.Context) {
	var (
		restaurants []database.Restaurant
		err         error
		emptyMsg    = noMatchesMessage
	)

	switch {
	case c.Query("name") != "":
		restaurants, err = h.restaurantRepo.SearchRestaurantsByName(c.Query("name"))
	case c.Query("type") != "":
		restaurants, err = h.restaurantRepo.ListRestaurantsByType(c.Query("type"))
		emptyMsg = "No restaurants found of this type"
	case c.Query("quarter") != "":
		restaurants, err = h.restaurantRepo.ListRestaurantsByQuarter(c.Query("quarter"))
		emptyMsg = "No restaurants found in this quarter"
	default:
		restaurants, err = h.restaurantRepo.ListRestaurants()
	}

	if err != nil {
		slog.Error("Database error", "operation", "list_restaurants", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"restaurants": []gin.H{}, "error": "Database error"})
		return
	}

	if len(restaurants) == 0 {
		c.JSON(http.StatusOK, gin.H{"restaurants": []gin.H{}, "error": emptyMsg})
		return
	}

	rows := make([]gin.H, 0, len(restaurants))
	for _, restaurant := range restaurants {
		rows = append(rows, restaurantJSON(restaurant))
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": rows, "error": nil})
}

func (h *Handler) ListRestaurantTypes(c *gin.Context) {
	types, err := h.restaurantRepo.ListRestaurantTypes()
	if err != nil {
		slog.Error("Database error", "operation", "list_restaurant_types", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"types": []string{}, "error": "Database error"})
		return
	}

	if len(types) == 0 {
		c.JSON(http.StatusOK, gin.H{"types": []string{}, "error": "No restaurant types found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"types": types, "error": nil})
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	restID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	restaurant, err := h.restaurantRepo.GetRestaurant(restID)
	if err != nil {
		slog.Error("Database error", "operation", "get_restaurant", "rest_id", restID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if restaurant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": noMatchesMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurantJSON(*restaurant), "error": nil})
}

// GetRestaurantMenu returns every item of a restaurant together with its
// resolved category name and full price history.
func (h *Handler) GetRestaurantMenu(c *gin.Context) {
	restID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"items": []gin.H{}, "error": "Invalid restaurant ID"})
		return
	}

	items, err := h.itemRepo.ListItemsByRestaurant(restID)
	if err != nil {
		slog.Error("Database error", "operation", "list_items", "rest_id", restID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"items": []gin.H{}, "error": "Database error"})
		return
	}

	if len(items) == 0 {
		c.JSON(http.StatusOK, gin.H{"items": []gin.H{}, "error": "No items found for this restaurant"})
		return
	}

	rows := make([]gin.H, 0, len(items))
	for _, item := range items {
		row := itemJSON(item)

		row["category_name"] = nil
		if item.CategoryID != nil {
			if name, err := h.categoryRepo.GetCategoryName(*item.CategoryID); err == nil && name != "" {
				row["category_name"] = name
			}
		}

		prices, err := h.priceRepo.ListPricesByItem(item.ItemID)
		if err != nil {
			slog.Error("Database error", "operation", "list_prices", "item_id", item.ItemID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"items": []gin.H{}, "error": "Database error"})
			return
		}
		priceRows := make([]gin.H, 0, len(prices))
		for _, price := range prices {
			priceRows = append(priceRows, priceJSON(price))
		}
		row["prices"] = priceRows

		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{"items": rows, "error": nil})
}

func (h *Handler) SearchItems(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"items": []gin.H{}, "error": "Item name is required"})
		return
	}

	items, err := h.itemRepo.SearchItemsByName(name)
	if err != nil {
		slog.Error("Database error", "operation", "search_items", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"items": []gin.H{}, "error": "Database error"})
		return
	}

	if len(items) == 0 {
		c.JSON(http.StatusOK, gin.H{"items": []gin.H{}, "error": noMatchesMessage})
		return
	}

	rows := make([]gin.H, 0, len(items))
	for _, item := range items {
		rows = append(rows, itemJSON(item))
	}

	c.JSON(http.StatusOK, gin.H{"items": rows, "error": nil})
}

func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.reportRepo.ListReports()
	if err != nil {
		slog.Error("Database error", "operation", "list_reports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"reports": []gin.H{}, "error": "Database error"})
		return
	}

	rows := make([]gin.H, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, reportJSON(report))
	}

	c.JSON(http.StatusOK, gin.H{"reports": rows, "error": nil})
}

func (h *Handler) GetItemPriceHistory(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"prices": []gin.H{}, "error": "Invalid item ID"})
		return
	}

	prices, err := h.priceRepo.ListPricesByItem(itemID)
	if err != nil {
		slog.Error("Database error", "operation", "list_prices", "item_id", itemID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"prices": []gin.H{}, "error": "Database error"})
		return
	}

	if len(prices) == 0 {
		c.JSON(http.StatusOK, gin.H{"prices": []gin.H{}, "error": "No price history found for this item"})
		return
	}

	rows := make([]gin.H, 0, len(prices))
	for _, price := range prices {
		rows = append(rows, priceJSON(price))
	}

	c.JSON(http.StatusOK, gin.H{"prices": rows, "error": nil})
}

func (h *Handler) CreateReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report payload: " + err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	reportDate := localMidnight(time.Now())
	if req.ReportDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ReportDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report_date, expected YYYY-MM-DD"})
			return
		}
		reportDate = parsed
	}

	reportID, err := h.reportRepo.InsertReport(database.PriceReport{
		Status:     status,
		Price:      req.Price,
		ReportDate: reportDate,
		ItemID:     req.ItemID,
		RestID:     req.RestID,
		UserID:     req.UserID,
	})
	if err != nil {
		slog.Error("Database error", "operation", "insert_report", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report_id": reportID, "error": nil})
}

// CreatePrice records a manually submitted price observation. Duplicates on
// the (restaurant, item, date, source) key are reported back without error.
func (h *Handler) CreatePrice(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price payload: " + err.Error()})
		return
	}

	date := localMidnight(time.Now())
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	source := req.Source
	if source == "" {
		if req.UserID != nil {
			source = fmt.Sprintf("user:%d", *req.UserID)
		} else {
			source = "user"
		}
	}

	priceID, err := h.priceRepo.InsertPrice(database.Price{
		Date:   date,
		Value:  req.Value,
		Source: source,
		ItemID: req.ItemID,
		RestID: req.RestID,
		UserID: req.UserID,
	})
	if err != nil {
		slog.Error("Database error", "operation", "insert_price", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if priceID == 0 {
		c.JSON(http.StatusOK, gin.H{
			"price_id": nil,
			"error":    "Price already recorded for this item, date and source",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"price_id": priceID, "error": nil})
}

// localMidnight truncates to the start of day in the clock's own location,
// keeping submitted dates on the configured timezone's calendar day.
func localMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func restaurantJSON(restaurant database.Restaurant) gin.H {
	row := gin.H{
		"rest_id":  restaurant.RestID,
		"name":     restaurant.Name,
		"type":     restaurant.Type,
		"slug":     restaurant.Slug,
		"location": restaurant.Location,
		"quarter":  nil,
	}
	if restaurant.Quarter != nil {
		row["quarter"] = *restaurant.Quarter
	}
	return row
}

func itemJSON(item database.Item) gin.H {
	row := gin.H{
		"item_id":     item.ItemID,
		"name":        item.Name,
		"type":        item.Type,
		"category_id": nil,
		"rest_id":     item.RestID,
	}
	if item.CategoryID != nil {
		row["category_id"] = *item.CategoryID
	}
	return row
}

func reportJSON(report database.PriceReport) gin.H {
	row := gin.H{
		"report_id":   report.ReportID,
		"status":      report.Status,
		"price":       report.Price,
		"report_date": report.ReportDate.Format("2006-01-02"),
		"item_id":     report.ItemID,
		"rest_id":     report.RestID,
		"user_id":     nil,
	}
	if report.UserID != nil {
		row["user_id"] = *report.UserID
	}
	return row
}

func priceJSON(price database.Price) gin.H {
	row := gin.H{
		"price_id": price.PriceID,
		"date":     price.Date.Format("2006-01-02"),
		"value":    price.Value,
		"source":   price.Source,
		"item_id":  price.ItemID,
		"rest_id":  price.RestID,
		"user_id":  nil,
	}
	if price.UserID != nil {
		row["user_id"] = *price.UserID
	}
	return row
}
