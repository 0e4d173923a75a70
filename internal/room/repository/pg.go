package repository

import (
	"github.com/pkg/errors"
	"github.com/uptrace/bun/driver/pgdriver"
)

// 23505 = unique_violation. The resolver relies on this to detect two
// concurrent create-on-miss attempts for the same room name.
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}
