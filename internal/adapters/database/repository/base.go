package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rafaelleal24/ecommerce/internal/core/serviceerrors"
)

// parseError relies on gorm.Config.TranslateError so that driver specific
// constraint errors arrive as gorm sentinels.
func parseError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return serviceerrors.NewConflictError("duplicate key error")
	}
	return err
}
