package server_test

import (
	"testing"

	"webhook-relay/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"NoSlash", "http://localhost:8080", "http://localhost:8080"},
		{"TrailingSlash", "http://localhost:8080/", "http://localhost:8080"},
		{"ManySlashes", "https://hooks.example.com///", "https://hooks.example.com"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{PublicURL: tt.url}
			assert.Equal(t, tt.want, c.BaseURL())
		})
	}
}
