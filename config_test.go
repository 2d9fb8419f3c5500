package mrm_test

import (
	"testing"

	"github.com/skorotkiewicz/mrm"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		wantErr  bool
	}{
		{"default endpoint", mrm.DefaultEndpoint, false},
		{"https endpoint", "https://api.example.com/v1", false},
		{"localhost with port", "http://localhost:8080/v1", false},
		{"missing scheme", "ml:8888/v1", true},
		{"unsupported scheme", "ftp://ml:8888/v1", true},
		{"missing host", "http:///v1", true},
		{"empty", "", true},
		{"garbage", "://not a url", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := mrm.Config{Endpoint: tt.endpoint, Model: "default"}
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, mrm.ErrEndpoint)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
