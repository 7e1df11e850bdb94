package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"school-cms/domain/repositories"
	"school-cms/pkg/logger"
)

// translate maps gorm errors onto the repository sentinels and logs
// anything else as a backend failure.
func translate(operation, table string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s %s: %w", operation, table, repositories.ErrConflict)
	}
	logger.DBError(operation, "Query failed", err, map[string]interface{}{
		"table": table,
	})
	return fmt.Errorf("%s %s: %w", operation, table, err)
}

// affected turns a write that matched no rows into ErrNotFound
func affected(operation, table string, result *gorm.DB) error {
	if result.Error != nil {
		return translate(operation, table, result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
