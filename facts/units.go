package facts

import (
	"fmt"
	"time"
)

// Bytes formats n using binary units, like "15.5G".
func Bytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(n)/float64(div), "KMGTPE"[exp])
}

// Percent formats a 0-100 percentage without decimals.
func Percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// Duration formats d as days, hours and minutes, like "3 days, 4:05".
func Duration(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	mins := int(d / time.Minute)

	switch days {
	case 0:
		return fmt.Sprintf("%d:%02d", hours, mins)
	case 1:
		return fmt.Sprintf("1 day, %d:%02d", hours, mins)
	default:
		return fmt.Sprintf("%d days, %d:%02d", days, hours, mins)
	}
}
