package utils

import (
	"time"

	"github.com/nzai/finstat/constants"
)

// TodayZero truncate time to today zero clock
func TodayZero(now time.Time) time.Time {
	_, offset := now.Zone()
	duration := time.Second * time.Duration(offset)
	return now.Add(duration).Truncate(time.Hour * 24).Add(-duration)
}

// ParseDate parse date text in YYYY-MM-DD
func ParseDate(text string) (time.Time, error) {
	return time.ParseInLocation(constants.DatePattern, text, time.Local)
}
