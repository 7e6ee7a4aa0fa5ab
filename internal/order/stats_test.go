package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalcStats(t *testing.T) {
	// Wednesday; the week started on Sunday the 26th.
	now := time.Date(2026, 7, 29, 15, 0, 0, 0, time.UTC)

	orders := []Order{
		// today
		{TotalAmount: 20000, DeliveryFee: 3000, Status: StatusPending, CreatedAt: now.Add(-2 * time.Hour)},
		{TotalAmount: 50000, DeliveryFee: 0, Status: StatusCompleted, CreatedAt: now.Add(-5 * time.Hour)},
		{TotalAmount: 15000, DeliveryFee: 3000, Status: StatusCancelled, CreatedAt: now.Add(-time.Hour)},
		// earlier this week (Monday the 27th)
		{TotalAmount: 30000, DeliveryFee: 0, Status: StatusCompleted, CreatedAt: time.Date(2026, 7, 27, 10, 0, 0, 0, time.UTC)},
		{TotalAmount: 12000, DeliveryFee: 3000, Status: StatusCancelled, CreatedAt: time.Date(2026, 7, 27, 11, 0, 0, 0, time.UTC)},
		// last week (Saturday the 25th)
		{TotalAmount: 40000, DeliveryFee: 0, Status: StatusCompleted, CreatedAt: time.Date(2026, 7, 25, 9, 0, 0, 0, time.UTC)},
		// pending but not from today still counts as new
		{TotalAmount: 25000, DeliveryFee: 3000, Status: StatusPending, CreatedAt: time.Date(2026, 7, 27, 9, 0, 0, 0, time.UTC)},
	}

	stats := calcStats(orders, now)

	assert.Equal(t, 3, stats.TodayOrders, "cancelled orders still count toward today's volume")
	assert.Equal(t, 23000+50000, stats.TodaySales, "cancelled orders are excluded from sales")
	assert.Equal(t, 23000+50000+30000+28000, stats.WeekSales, "week starts on the most recent Sunday")
	assert.Equal(t, 2, stats.NewOrders)
}

func TestCalcStats_Empty(t *testing.T) {
	stats := calcStats(nil, time.Now().UTC())
	assert.Zero(t, stats.TodayOrders)
	assert.Zero(t, stats.TodaySales)
	assert.Zero(t, stats.WeekSales)
	assert.Zero(t, stats.NewOrders)
}

func TestDeliveryFeeFor(t *testing.T) {
	assert.Equal(t, 3000, deliveryFeeFor(DeliveryTypeDelivery, 15000))
	assert.Equal(t, 3000, deliveryFeeFor(DeliveryTypeDelivery, 29999))
	assert.Equal(t, 0, deliveryFeeFor(DeliveryTypeDelivery, 30000))
	assert.Equal(t, 0, deliveryFeeFor(DeliveryTypePickup, 15000))
	assert.Equal(t, 0, deliveryFeeFor(DeliveryTypePickup, 50000))
}
