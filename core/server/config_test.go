package server_test

import (
	"testing"

	"prompt-library/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name string
		mb   int
		want int
	}{
		{"Configured", 8, 8 << 20},
		{"Zero", 0, server.DefaultBodyLimitMB << 20},
		{"Negative", -1, server.DefaultBodyLimitMB << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.mb}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":9090", server.Config{Port: "9090"}.Address())
}
