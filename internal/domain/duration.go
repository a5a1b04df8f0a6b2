package domain

import "math"

// DurationOption represents a sellable session length from the venue catalog
type DurationOption struct {
	ID     int64
	Hours  float64
	Active bool
}

// Minutes returns the option length in minutes
func (o DurationOption) Minutes() int {
	return HoursToMinutes(o.Hours)
}

// HoursToMinutes converts decimal hours to whole minutes
func HoursToMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

// MinutesToHours converts minutes to decimal hours
func MinutesToHours(minutes int) float64 {
	return float64(minutes) / 60
}
