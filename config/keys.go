package config

import (
	"fmt"
	"time"
)

// Redis keys shared by notify-svc (writer) and analytics-svc (reader).

// DayLayout formats the day component of the daily keys.
const DayLayout = "2006-01-02"

// Day is the UTC calendar day of t. Writers and readers of the daily keys
// must agree on it regardless of the zone t was produced in.
func Day(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

func DailyItemsKey(day string, restaurantID int) string {
	return fmt.Sprintf("analytics:items:daily:%s:%d", day, restaurantID)
}

func AllTimeItemsKey(restaurantID int) string {
	return fmt.Sprintf("analytics:items:alltime:%d", restaurantID)
}

// RevenueKey is a hash of day -> grand total for one restaurant.
func RevenueKey(restaurantID int) string {
	return fmt.Sprintf("analytics:revenue:%d", restaurantID)
}

func StaffChannel(restaurantID int) string {
	return fmt.Sprintf("staff:%d", restaurantID)
}
