package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(v *viper.Viper)
		wantError bool
		errMsg    string
	}{
		{
			name:      "Valid Configuration",
			setup:     func(v *viper.Viper) { v.Set("format", "markdown") },
			wantError: false,
		},
		{
			name:      "Invalid Format",
			setup:     func(v *viper.Viper) { v.Set("format", "csv") },
			wantError: true,
			errMsg:    `format must be one of [text json yaml markdown], got: "csv"`,
		},
		{
			name:      "Invalid Loops",
			setup:     func(v *viper.Viper) { v.Set("call.loops", 0) },
			wantError: true,
			errMsg:    "call.loops must be positive, got: 0",
		},
		{
			name:      "Negative Warmup",
			setup:     func(v *viper.Viper) { v.Set("warmup", -1) },
			wantError: true,
			errMsg:    "warmup must not be negative",
		},
		{
			name: "Max Size Below Next Size",
			setup: func(v *viper.Viper) {
				v.Set("alloc.next_size", 64)
				v.Set("alloc.max_size", 32)
			},
			wantError: true,
			errMsg:    "alloc.max_size must be at least alloc.next_size",
		},
		{
			name:      "Negative Page",
			setup:     func(v *viper.Viper) { v.Set("pdf.page", -2) },
			wantError: true,
			errMsg:    "pdf.page must not be negative",
		},
		{
			name:      "Unknown History Type",
			setup:     func(v *viper.Viper) { v.Set("history.type", "redis") },
			wantError: true,
			errMsg:    "history.type must be one of",
		},
		{
			name:      "Invalid Push URL",
			setup:     func(v *viper.Viper) { v.Set("metrics.push_url", "not a url") },
			wantError: true,
			errMsg:    "metrics.push_url must be a URL",
		},
		{
			name:      "Empty Baseline",
			setup:     func(v *viper.Viper) { v.Set("alloc.baseline", "") },
			wantError: true,
			errMsg:    "alloc.baseline is required",
		},
		{
			name:      "Negative Fail Threshold",
			setup:     func(v *viper.Viper) { v.Set("history.fail_threshold", -1.5) },
			wantError: true,
			errMsg:    "history.fail_threshold must not be negative, got: -1.5",
		},
		{
			name:      "Missing Job",
			setup:     func(v *viper.Viper) { v.Set("metrics.job", "") },
			wantError: true,
			errMsg:    "metrics.job is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validConfig(t)
			tt.setup(v)

			_, err := Decode(v)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "configuration validation failed")
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	v := validConfig(t)
	v.Set("format", "csv")
	v.Set("alloc.count", -5)

	_, err := Decode(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format must be one of")
	assert.Contains(t, err.Error(), "alloc.count must be positive, got: -5")
}
