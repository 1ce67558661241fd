package geofence

import (
	"testing"

	"raahi/config"
	"raahi/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func testConfig(static ...config.StaticGeofenceConfig) *config.Config {
	return &config.Config{
		Geofences: &config.GeofencesConfig{
			MinRadius: entity.MinGeofenceRadiusMeters,
			MaxRadius: entity.MaxGeofenceRadiusMeters,
			Static:    static,
		},
	}
}

var redFortConfig = config.StaticGeofenceConfig{
	ID:        "red-fort",
	Name:      "Red Fort",
	Latitude:  28.6562,
	Longitude: 77.2410,
	Radius:    300,
	Type:      "safe",
}

func TestNewStaticRegistry_LoadsAndDefaults(t *testing.T) {
	registry, err := NewStaticRegistry(testConfig(
		redFortConfig,
		config.StaticGeofenceConfig{ID: "closed", Name: "Closed", Latitude: 1, Longitude: 1, Radius: 50, IsActive: boolPtr(false)},
	))
	require.NoError(t, err)

	active := registry.ListActive()
	require.Len(t, active, 1)
	fence := active[0]
	assert.Equal(t, "red-fort", fence.ID)
	assert.Equal(t, entity.GeofenceSafe, fence.Classification)
	assert.Equal(t, entity.DefaultGeofenceColor, fence.Color)
	assert.True(t, fence.Static)
	assert.Empty(t, fence.CreatedBy)

	closed, ok := registry.FindByID("closed")
	require.True(t, ok)
	assert.False(t, closed.Active)
	assert.Equal(t, entity.GeofenceMonitoring, closed.Classification)
}

func TestNewStaticRegistry_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry config.StaticGeofenceConfig
	}{
		{"missing id", config.StaticGeofenceConfig{Name: "x", Latitude: 1, Longitude: 1, Radius: 100}},
		{"radius too small", config.StaticGeofenceConfig{ID: "a", Name: "x", Latitude: 1, Longitude: 1, Radius: 5}},
		{"latitude out of range", config.StaticGeofenceConfig{ID: "a", Name: "x", Latitude: 91, Longitude: 1, Radius: 100}},
		{"unknown type", config.StaticGeofenceConfig{ID: "a", Name: "x", Latitude: 1, Longitude: 1, Radius: 100, Type: "danger"}},
		{"missing name", config.StaticGeofenceConfig{ID: "a", Latitude: 1, Longitude: 1, Radius: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStaticRegistry(testConfig(tt.entry))
			assert.Error(t, err)
		})
	}
}

func TestNewStaticRegistry_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewStaticRegistry(testConfig(redFortConfig, redFortConfig))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestStaticRegistry_ReturnsCopies(t *testing.T) {
	registry, err := NewStaticRegistry(testConfig(redFortConfig))
	require.NoError(t, err)

	registry.ListActive()[0].RadiusMeters = 1
	found, _ := registry.FindByID("red-fort")
	found.Name = "changed"

	again, ok := registry.FindByID("red-fort")
	require.True(t, ok)
	assert.Equal(t, 300.0, again.RadiusMeters)
	assert.Equal(t, "Red Fort", again.Name)
}
