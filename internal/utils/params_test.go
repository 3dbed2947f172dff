package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRawDomain(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare domain passes through", "example.com", "example.com", false},
		{"full url reduced to hostname", "https://example.com/path?q=1", "example.com", false},
		{"www prefix stripped", "www.example.com", "example.com", false},
		{"www stripped case-insensitively", "WWW.Example.com", "Example.com", false},
		{"url with www", "http://www.example.com", "example.com", false},
		{"trailing slash trimmed", "example.com/", "example.com", false},
		{"surrounding whitespace trimmed", "  example.com  ", "example.com", false},
		{"empty input rejected", "", "", true},
		{"scheme without host rejected", "https://", "", true},
		{"bare www rejected", "www.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractRawDomain(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
