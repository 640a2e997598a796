package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsFull24Conflict(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"full24 index violation", &pgconn.PgError{Code: "23505", ConstraintName: "ux_shifts_full24_patient_date"}, true},
		{"wrapped full24 index violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "ux_shifts_full24_patient_date"}), true},
		{"primary key violation", &pgconn.PgError{Code: "23505", ConstraintName: "shifts_pkey"}, false},
		{"other pg error on the index", &pgconn.PgError{Code: "40001", ConstraintName: "ux_shifts_full24_patient_date"}, false},
		{"translated duplicate without constraint", gorm.ErrDuplicatedKey, false},
		{"unrelated", errors.New("connection reset"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isFull24Conflict(tc.err))
		})
	}
}
