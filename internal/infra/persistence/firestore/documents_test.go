package firestore

import (
	"testing"

	"raahi/internal/domain/entity"

	fs "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
)

func TestOwnerFromRef(t *testing.T) {
	client := &fs.Client{}
	ref := client.Collection(entity.UsersCollection).Doc("user-42").
		Collection(entity.PanicAlertsCollection).Doc("alert-1")

	assert.Equal(t, "user-42", ownerFromRef(ref))
	assert.Equal(t, "", ownerFromRef(client.Collection(entity.GeofencesCollection).Doc("g-1")))
	assert.Equal(t, "", ownerFromRef(nil))
}

func TestFromAlertDomain_DropsOwner(t *testing.T) {
	alert := &entity.PanicAlert{
		ID:               "alert-1",
		OwnerUserID:      "user-42",
		Location:         entity.Coordinate{Latitude: 28.6562, Longitude: 77.2410},
		LocationDegraded: true,
		Status:           entity.AlertStatusInProgress,
	}

	doc := fromAlertDomain(alert)

	assert.Equal(t, "alert-1", doc.ID)
	assert.Equal(t, "in_progress", doc.Status)
	assert.Equal(t, 28.6562, doc.Location.Latitude)
	assert.True(t, doc.LocationDegraded)
}
