package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes the repositories translate into domain errors.
const (
	sqlStateUniqueViolation = "23505"
	sqlStateCheckViolation  = "23514"
)

// violates reports whether err is the given constraint failure, either as the
// translated GORM sentinel or as the raw driver error.
func violates(err error, sentinel error, sqlState string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, sentinel) {
		return true
	}

	return strings.Contains(err.Error(), sqlState)
}

func isUniqueConstraintViolation(err error) bool {
	if violates(err, gorm.ErrDuplicatedKey, sqlStateUniqueViolation) {
		return true
	}

	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

func isCheckConstraintViolation(err error) bool {
	return violates(err, gorm.ErrCheckConstraintViolated, sqlStateCheckViolation)
}
