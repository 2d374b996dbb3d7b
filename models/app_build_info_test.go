package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	t.Run("injected", func(t *testing.T) {
		info := NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")

		assert.True(t, info.HasVersion())
		assert.Equal(t, "1.4.0", info.BuildVersion())
		assert.Equal(t, "2026-10-01", info.BuildDate())
		assert.Equal(t, "abc123", info.BuildCommit())
		assert.Equal(t, "Build version: 1.4.0\nBuild date: 2026-10-01\nBuild commit: abc123\n", info.String())
	})

	t.Run("unset", func(t *testing.T) {
		info := NewAppBuildInfo("", "", "")

		assert.False(t, info.HasVersion())
		assert.Equal(t, "N/A", info.BuildVersion())
		assert.Equal(t, "N/A", info.BuildDate())
		assert.Equal(t, "N/A", info.BuildCommit())
	})
}
