// Package util holds small formatting helpers shared by the worker and the CLI.
package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatCoordinate renders a latitude/longitude pair with five decimals (about 1 m).
func FormatCoordinate(latitude, longitude float64) string {
	return fmt.Sprintf("%.5f, %.5f", latitude, longitude)
}

// FormatDuration rounds to whole seconds, and to whole minutes past an hour
// ("45s", "2m30s", "1h30m").
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Hour {
		return d.String()
	}

	return strings.TrimSuffix(d.Truncate(time.Minute).String(), "0s")
}
