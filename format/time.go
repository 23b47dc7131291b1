package format

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour
const week = 7 * day
const month = 30 * day

type magnitude struct {
	d      time.Duration
	format string
	divBy  time.Duration
}

var magnitudes = []magnitude{
	{2 * time.Second, "just now", 0},
	{time.Minute, "%ds ago", time.Second},
	{2 * time.Minute, "1m ago", 0},
	{time.Hour, "%dm ago", time.Minute},
	{2 * time.Hour, "1h ago", 0},
	{day, "%dh ago", time.Hour},
	{2 * day, "1d ago", 0},
	{week, "%dd ago", day},
	{2 * week, "1w ago", 0},
	{month, "%dw ago", week},
}

// Time formats a past timestamp as a short relative string ("3h ago").
// Anything older than a month falls back to the calendar date.
func Time(then time.Time) string {
	diff := time.Since(then)

	for _, mag := range magnitudes {
		if diff < mag.d {
			if mag.divBy == 0 {
				return mag.format
			}
			return fmt.Sprintf(mag.format, diff/mag.divBy)
		}
	}

	return then.Local().Format("Jan 2 2006")
}
