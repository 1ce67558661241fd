// Package firestore stores alerts under per-user partitions and dynamic
// geofences in a flat collection, using Cloud Firestore.
package firestore

import (
	"time"

	"raahi/internal/domain/entity"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type locationDoc struct {
	Latitude  float64 `firestore:"latitude"`
	Longitude float64 `firestore:"longitude"`
}

// presenceDoc is users/{uid}
type presenceDoc struct {
	UID         string    `firestore:"uid"`
	Email       string    `firestore:"email"`
	DisplayName string    `firestore:"displayName"`
	IsAnonymous bool      `firestore:"isAnonymous"`
	LastActive  time.Time `firestore:"lastActive,serverTimestamp"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}

// alertDoc is users/{uid}/panic_alerts/{id}. The owner is never stored in the
// document; it is the parent of the subcollection.
type alertDoc struct {
	ID               string      `firestore:"id"`
	UserEmail        string      `firestore:"userEmail"`
	UserName         string      `firestore:"userName"`
	Location         locationDoc `firestore:"location"`
	LocationDegraded bool        `firestore:"locationDegraded"`
	Status           string      `firestore:"status"`
	Resolved         bool        `firestore:"resolved"`
	IsAnonymous      bool        `firestore:"isAnonymous"`
	Notes            string      `firestore:"notes,omitempty"`
	UserAgent        string      `firestore:"userAgent,omitempty"`
	ClientTimestamp  *time.Time  `firestore:"clientTimestamp,omitempty"`
	CreatedAt        time.Time   `firestore:"createdAt,serverTimestamp"`
	UpdatedAt        time.Time   `firestore:"updatedAt,serverTimestamp"`
	UpdatedBy        string      `firestore:"updatedBy,omitempty"`
}

// geofenceDoc is geofences/{id}
type geofenceDoc struct {
	Name      string      `firestore:"name"`
	Center    locationDoc `firestore:"center"`
	Radius    float64     `firestore:"radius"`
	Type      string      `firestore:"type"`
	Color     string      `firestore:"color"`
	IsActive  bool        `firestore:"isActive"`
	CreatedBy string      `firestore:"createdBy"`
	CreatedAt time.Time   `firestore:"createdAt"`
	UpdatedAt time.Time   `firestore:"updatedAt"`
}

func fromAlertDomain(a *entity.PanicAlert) *alertDoc {
	return &alertDoc{
		ID:               a.ID,
		UserEmail:        a.UserEmail,
		UserName:         a.UserName,
		Location:         locationDoc{Latitude: a.Location.Latitude, Longitude: a.Location.Longitude},
		LocationDegraded: a.LocationDegraded,
		Status:           a.Status.String(),
		Resolved:         a.Resolved,
		IsAnonymous:      a.IsAnonymous,
		Notes:            a.Notes,
		UserAgent:        a.UserAgent,
		ClientTimestamp:  a.ClientTimestamp,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
		UpdatedBy:        a.UpdatedBy,
	}
}

// toAlertDomain decodes an alert snapshot, recovering the owner from the document path
func toAlertDomain(snap *fs.DocumentSnapshot) (*entity.PanicAlert, error) {
	var doc alertDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	id := doc.ID
	if id == "" {
		id = snap.Ref.ID
	}

	return &entity.PanicAlert{
		ID:               id,
		OwnerUserID:      ownerFromRef(snap.Ref),
		UserEmail:        doc.UserEmail,
		UserName:         doc.UserName,
		Location:         entity.Coordinate{Latitude: doc.Location.Latitude, Longitude: doc.Location.Longitude},
		LocationDegraded: doc.LocationDegraded,
		Status:           entity.AlertStatus(doc.Status),
		Resolved:         doc.Resolved,
		IsAnonymous:      doc.IsAnonymous,
		Notes:            doc.Notes,
		UserAgent:        doc.UserAgent,
		ClientTimestamp:  doc.ClientTimestamp,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
		UpdatedBy:        doc.UpdatedBy,
	}, nil
}

// ownerFromRef walks users/{uid}/panic_alerts/{id} up to {uid}
func ownerFromRef(ref *fs.DocumentRef) string {
	if ref == nil || ref.Parent == nil || ref.Parent.Parent == nil {
		return ""
	}

	return ref.Parent.Parent.ID
}

func fromGeofenceDomain(g *entity.Geofence) *geofenceDoc {
	return &geofenceDoc{
		Name:      g.Name,
		Center:    locationDoc{Latitude: g.Center.Latitude, Longitude: g.Center.Longitude},
		Radius:    g.RadiusMeters,
		Type:      g.Classification.String(),
		Color:     g.Color,
		IsActive:  g.Active,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func toGeofenceDomain(snap *fs.DocumentSnapshot) (*entity.Geofence, error) {
	var doc geofenceDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return &entity.Geofence{
		ID:             snap.Ref.ID,
		Name:           doc.Name,
		Center:         entity.Coordinate{Latitude: doc.Center.Latitude, Longitude: doc.Center.Longitude},
		RadiusMeters:   doc.Radius,
		Classification: entity.GeofenceClassification(doc.Type),
		Color:          doc.Color,
		Active:         doc.IsActive,
		CreatedBy:      doc.CreatedBy,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
