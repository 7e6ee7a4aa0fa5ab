package order

import "time"

const dateLayout = "2006-01-02"

// calcStats buckets orders for the dashboard. Today's order count includes
// cancelled orders; the sales sums exclude them. The week starts on the
// most recent Sunday.
func calcStats(orders []Order, now time.Time) Stats {
	today := now.Format(dateLayout)
	weekStart := now.AddDate(0, 0, -int(now.Weekday())).Format(dateLayout)

	var s Stats
	for _, o := range orders {
		day := o.CreatedAt.UTC().Format(dateLayout)
		revenue := o.TotalAmount + o.DeliveryFee

		if day == today {
			s.TodayOrders++
			if o.Status != StatusCancelled {
				s.TodaySales += revenue
			}
		}
		if day >= weekStart && o.Status != StatusCancelled {
			s.WeekSales += revenue
		}
		if o.Status == StatusPending {
			s.NewOrders++
		}
	}
	return s
}
