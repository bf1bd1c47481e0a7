package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/progressly/pkg/config"
)

func TestConfigLookups(t *testing.T) {
	cfg := config.New()
	assert.Same(t, cfg, config.New())

	t.Setenv("DAY_BOUNDARY_HOUR", "6")
	assert.Equal(t, 6, cfg.GetInt("DAY_BOUNDARY_HOUR", 4))
	t.Setenv("DAY_BOUNDARY_HOUR", "six")
	assert.Equal(t, 4, cfg.GetInt("DAY_BOUNDARY_HOUR", 4))
	t.Setenv("DAY_BOUNDARY_HOUR", "")
	assert.Equal(t, 4, cfg.GetInt("DAY_BOUNDARY_HOUR", 4))

	t.Setenv("API_ADDRESS", "")
	assert.Equal(t, ":8080", cfg.GetStringOr("API_ADDRESS", ":8080"))
	t.Setenv("API_ADDRESS", ":9000")
	assert.Equal(t, ":9000", cfg.GetStringOr("API_ADDRESS", ":9000"))
	assert.Equal(t, ":9000", cfg.GetString("API_ADDRESS"))
}
