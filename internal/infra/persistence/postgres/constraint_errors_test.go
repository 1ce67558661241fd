package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(errors.WithStack(gorm.ErrDuplicatedKey)))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "panic_alerts_pkey" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isCheckConstraintViolation(errors.New(`violates check constraint "chk_geofences_radius" (SQLSTATE 23514)`)))
	assert.False(t, isCheckConstraintViolation(gorm.ErrDuplicatedKey))
}
