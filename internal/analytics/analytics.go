package analytics

import (
	"sort"
	"time"

	"github.com/pizzadelight/storefront/pkg/enums"
	"github.com/pizzadelight/storefront/pkg/models"
)

const (
	dateKeyLayout   = "2006-01-02"
	dateLabelLayout = "Jan 2"
)

// StatusSummary counts the orders sitting in one lifecycle status.
type StatusSummary struct {
	Status enums.OrderStatus `json:"status"`
	Label  string            `json:"label"`
	Count  int               `json:"count"`
}

// DailyRevenue is one point of the revenue-by-day series.
type DailyRevenue struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// Metrics is the full dashboard aggregate computed over a ledger.
type Metrics struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      float64         `json:"total_revenue"`
	AverageOrderValue float64         `json:"average_order_value"`
	RevenueThisWeek   float64         `json:"revenue_this_week"`
	StatusSummaries   []StatusSummary `json:"status_summaries"`
	DailyRevenue      []DailyRevenue  `json:"daily_revenue"`
	HasOrders         bool            `json:"has_orders"`
}

// Compute aggregates the ledger into dashboard metrics. The week window
// is the trailing seven calendar days: local midnight six days before
// now, inclusive. Orders whose timestamp does not parse are skipped
// from every metric.
func Compute(orders []models.Order, now time.Time) Metrics {
	weekStart := startOfDay(now).AddDate(0, 0, -6)

	statusCounts := make(map[enums.OrderStatus]int)
	type dayBucket struct {
		revenue float64
		orders  int
	}
	days := make(map[string]dayBucket)

	metrics := Metrics{}
	for _, order := range orders {
		createdAt, err := time.Parse(time.RFC3339, order.CreatedAt)
		if err != nil {
			continue
		}

		metrics.TotalOrders++
		metrics.TotalRevenue += order.Total
		statusCounts[order.Status]++

		if !createdAt.Before(weekStart) {
			metrics.RevenueThisWeek += order.Total
		}

		key := createdAt.Local().Format(dateKeyLayout)
		bucket := days[key]
		bucket.revenue += order.Total
		bucket.orders++
		days[key] = bucket
	}

	if metrics.TotalOrders > 0 {
		metrics.AverageOrderValue = metrics.TotalRevenue / float64(metrics.TotalOrders)
		metrics.HasOrders = true
	}

	for _, status := range enums.AllOrderStatuses() {
		metrics.StatusSummaries = append(metrics.StatusSummaries, StatusSummary{
			Status: status,
			Label:  status.Label(),
			Count:  statusCounts[status],
		})
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		day, _ := time.ParseInLocation(dateKeyLayout, key, time.Local)
		bucket := days[key]
		metrics.DailyRevenue = append(metrics.DailyRevenue, DailyRevenue{
			Date:    key,
			Label:   day.Format(dateLabelLayout),
			Revenue: bucket.revenue,
			Orders:  bucket.orders,
		})
	}

	return metrics
}

func startOfDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}
