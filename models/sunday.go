package models

import "time"

// NextSunday returns the nth Sunday on or after from, at midnight in from's location.
// n=1 is the coming Sunday, or from itself when it is a Sunday.
func NextSunday(from time.Time, n int) time.Time {
	if n < 1 {
		n = 1
	}
	days := (7-int(from.Weekday()))%7 + (n-1)*7
	return midnight(from).AddDate(0, 0, days)
}

// PreviousSunday returns the nth Sunday strictly before from.
func PreviousSunday(from time.Time, n int) time.Time {
	if n < 1 {
		n = 1
	}
	back := int(from.Weekday())
	if back == 0 {
		back = 7
	}
	return midnight(from).AddDate(0, 0, -(back + (n-1)*7))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
