package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Host:     "db.local",
		Port:     3306,
		User:     "arena",
		Password: "secret",
		DBName:   "duel_rooms",
	}

	assert.Equal(t,
		"arena:secret@tcp(db.local:3306)/duel_rooms?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.DSN())
}
