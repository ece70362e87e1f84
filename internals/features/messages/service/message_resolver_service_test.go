package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUndefinedTable(t *testing.T) {
	undefined := &pgconn.PgError{Code: "42P01", Message: `relation "user_messages_web" does not exist`}
	assert.True(t, IsUndefinedTable(undefined))
	assert.True(t, IsUndefinedTable(fmt.Errorf("query gagal: %w", undefined)))

	otherPg := &pgconn.PgError{Code: "23505"}
	assert.False(t, IsUndefinedTable(otherPg))
	assert.False(t, IsUndefinedTable(errors.New("connection refused")))
	assert.False(t, IsUndefinedTable(nil))
}
