package db

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestConnectMissingURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	err := Connect()
	assert.NotEqual(t, err, nil)
}
