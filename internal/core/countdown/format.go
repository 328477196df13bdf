package countdown

import "fmt"

// Format renders seconds as HH:MM:SS. Hours are not capped, so 100 hours
// renders as "100:00:00".
func Format(secs int) string {
	if secs < 0 {
		secs = 0
	}
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ExpiredMessage is shown once the countdown reaches zero.
func ExpiredMessage(initial int) string {
	return fmt.Sprintf("Time's up! (%ds)", initial)
}
