package util

import (
	"testing"
	"time"
)

func TestFormatCoordinate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		expected  string
	}{
		{name: "red fort", latitude: 28.65621, longitude: 77.24101, expected: "28.65621, 77.24101"},
		{name: "rounds to five decimals", latitude: 12.3456789, longitude: -45.6789012, expected: "12.34568, -45.67890"},
		{name: "origin", latitude: 0, longitude: 0, expected: "0.00000, 0.00000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCoordinate(tt.latitude, tt.longitude); got != tt.expected {
				t.Fatalf("FormatCoordinate(%f, %f) = %s, want %s", tt.latitude, tt.longitude, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "zero", duration: 0, expected: "0s"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute + 20*time.Second, expected: "1h30m"},
		{name: "whole hour", duration: 2 * time.Hour, expected: "2h0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
