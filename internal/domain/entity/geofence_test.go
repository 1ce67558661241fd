package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		coord   Coordinate
		wantErr error
	}{
		{"Red Fort", Coordinate{Latitude: 28.6562, Longitude: 77.2410}, nil},
		{"South pole bound", Coordinate{Latitude: -90, Longitude: 0}, nil},
		{"North pole bound", Coordinate{Latitude: 90, Longitude: 0}, nil},
		{"West bound", Coordinate{Latitude: 0, Longitude: -180}, nil},
		{"East bound", Coordinate{Latitude: 0, Longitude: 180}, nil},
		{"Latitude 91", Coordinate{Latitude: 91, Longitude: 0}, ErrLatitudeOutOfRange},
		{"Latitude -90.0001", Coordinate{Latitude: -90.0001, Longitude: 0}, ErrLatitudeOutOfRange},
		{"Longitude 181", Coordinate{Latitude: 0, Longitude: 181}, ErrLongitudeOutOfRange},
		{"NaN latitude", Coordinate{Latitude: math.NaN(), Longitude: 77}, ErrCoordinateNotFinite},
		{"Infinite longitude", Coordinate{Latitude: 28, Longitude: math.Inf(1)}, ErrCoordinateNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coord.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCoordinate_ReturnsZeroValueOnError(t *testing.T) {
	c, err := NewCoordinate(91, 0)

	require.Error(t, err)
	assert.True(t, c.IsZero())
}

func TestCoordinate_Point(t *testing.T) {
	p := Coordinate{Latitude: 28.6562, Longitude: 77.2410}.Point()

	assert.Equal(t, 77.2410, p.Lon())
	assert.Equal(t, 28.6562, p.Lat())
}

func TestGeofence_Validate_RadiusBounds(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		wantErr bool
	}{
		{"Radius 5", 5, true},
		{"Radius 10", 10, false},
		{"Radius 300", 300, false},
		{"Radius 10000", 10000, false},
		{"Radius 10001", 10001, true},
		{"Radius NaN", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Geofence{
				Name:         "Zone",
				Center:       Coordinate{Latitude: 28.6, Longitude: 77.2},
				RadiusMeters: tt.radius,
			}

			err := g.Validate(MinGeofenceRadiusMeters, MaxGeofenceRadiusMeters)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRadiusOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGeofence_Validate_RequiresName(t *testing.T) {
	g := &Geofence{Center: Coordinate{Latitude: 1, Longitude: 1}, RadiusMeters: 100}

	assert.ErrorIs(t, g.Validate(MinGeofenceRadiusMeters, MaxGeofenceRadiusMeters), ErrGeofenceNameRequired)
}

func TestGeofenceClassification_IsValid(t *testing.T) {
	assert.True(t, GeofenceSafe.IsValid())
	assert.True(t, GeofenceMonitoring.IsValid())
	assert.True(t, GeofenceRestricted.IsValid())
	assert.False(t, GeofenceClassification("danger").IsValid())
	assert.False(t, GeofenceClassification("").IsValid())
}

func TestActor_CanModify(t *testing.T) {
	fence := &Geofence{ID: "g1", CreatedBy: "owner"}

	assert.True(t, Actor{UserID: "owner", Roles: Roles{RoleUser}}.CanModify(fence))
	assert.False(t, Actor{UserID: "stranger", Roles: Roles{RoleUser}}.CanModify(fence))
	assert.True(t, Actor{UserID: "stranger", Roles: Roles{RoleOperator}}.CanModify(fence))
	assert.True(t, Actor{UserID: "stranger", Roles: Roles{RoleAdmin}}.CanModify(fence))

	static := &Geofence{ID: "s1"}
	assert.False(t, Actor{UserID: ""}.CanModify(static))
}

func TestRolesFromStrings_DropsUnknown(t *testing.T) {
	roles := RolesFromStrings([]string{"user", "superuser", "operator"})

	assert.Equal(t, Roles{RoleUser, RoleOperator}, roles)
	assert.True(t, roles.HasElevated())
	assert.Equal(t, []string{"user", "operator"}, roles.ToStrings())
}
