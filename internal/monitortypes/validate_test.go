package monitortypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMonitorFormData(t *testing.T) {
	tests := []struct {
		name        string
		monitorType string
		data        map[string]interface{}
		wantSuccess bool
		wantErrors  []string
	}{
		{
			name:        "nil data always fails",
			monitorType: "http",
			data:        nil,
			wantSuccess: false,
			wantErrors:  []string{"Monitor data is required"},
		},
		{
			name:        "valid http monitor",
			monitorType: "http",
			data:        map[string]interface{}{"url": "https://example.com"},
			wantSuccess: true,
		},
		{
			name:        "http missing url",
			monitorType: "http",
			data:        map[string]interface{}{},
			wantSuccess: false,
			wantErrors:  []string{"URL is required"},
		},
		{
			name:        "wrong-typed required field counts as missing",
			monitorType: "http",
			data:        map[string]interface{}{"url": 42},
			wantSuccess: false,
			wantErrors:  []string{"URL is required"},
		},
		{
			name:        "blank required field counts as missing",
			monitorType: "ping",
			data:        map[string]interface{}{"host": "   "},
			wantSuccess: false,
			wantErrors:  []string{"Host is required"},
		},
		{
			name:        "select option matched case-insensitively",
			monitorType: "http",
			data:        map[string]interface{}{"url": "https://example.com", "method": "head"},
			wantSuccess: true,
		},
		{
			name:        "select rejects unknown option",
			monitorType: "http",
			data:        map[string]interface{}{"url": "https://example.com", "method": "TRACE"},
			wantSuccess: false,
			wantErrors:  []string{"Method must be one of: GET, HEAD, POST"},
		},
		{
			name:        "number below minimum",
			monitorType: "port",
			data:        map[string]interface{}{"host": "example.com", "port": float64(0)},
			wantSuccess: false,
			wantErrors:  []string{"Port must be at least 1"},
		},
		{
			name:        "number above maximum",
			monitorType: "port",
			data:        map[string]interface{}{"host": "example.com", "port": 70000},
			wantSuccess: false,
			wantErrors:  []string{"Port must be at most 65535"},
		},
		{
			name:        "wrong-typed required number counts as missing",
			monitorType: "port",
			data:        map[string]interface{}{"host": "example.com", "port": "8080"},
			wantSuccess: false,
			wantErrors:  []string{"Port is required"},
		},
		{
			name:        "dns requires record type from the option list",
			monitorType: "dns",
			data:        map[string]interface{}{"host": "example.com", "record_type": "SOA"},
			wantSuccess: false,
			wantErrors:  []string{"Record type must be one of: A, AAAA, CNAME, MX, TXT, NS"},
		},
		{
			name:        "dns expected value is optional",
			monitorType: "dns",
			data:        map[string]interface{}{"host": "example.com", "record_type": "A"},
			wantSuccess: true,
		},
		{
			name:        "unknown type falls through to base fields only",
			monitorType: "database",
			data:        map[string]interface{}{"check_interval": -5},
			wantSuccess: false,
			wantErrors:  []string{"Check interval must be a positive number"},
		},
		{
			name:        "unknown type with clean bag passes",
			monitorType: "database",
			data:        map[string]interface{}{"anything": "goes"},
			wantSuccess: true,
		},
		{
			name:        "base fields validated only when present",
			monitorType: "ping",
			data:        map[string]interface{}{"host": "example.com"},
			wantSuccess: true,
		},
		{
			name:        "base field rejects non-positive",
			monitorType: "ping",
			data:        map[string]interface{}{"host": "example.com", "timeout": 0},
			wantSuccess: false,
			wantErrors:  []string{"Timeout must be a positive number"},
		},
		{
			name:        "multiple errors accumulate",
			monitorType: "port",
			data:        map[string]interface{}{"retry_attempts": "three"},
			wantSuccess: false,
			wantErrors:  []string{"Host is required", "Port is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateMonitorFormData(tt.monitorType, tt.data)

			assert.Equal(t, tt.wantSuccess, result.Success)

			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, result.Errors)
			} else {
				assert.Empty(t, result.Errors)
			}
		})
	}
}

func TestValidateMonitorFormDataAcceptsNumericKinds(t *testing.T) {
	for _, port := range []interface{}{float64(8080), float32(8080), int(8080), int64(8080)} {
		result := ValidateMonitorFormData("port", map[string]interface{}{
			"host": "example.com",
			"port": port,
		})

		assert.True(t, result.Success, "port value %T should validate", port)
	}
}

func TestGetMonitorTypes(t *testing.T) {
	configs := GetMonitorTypes()

	require.Len(t, configs, 4)
	assert.Equal(t, []string{"http", "ping", "port", "dns"}, []string{
		configs[0].Type, configs[1].Type, configs[2].Type, configs[3].Type,
	})

	// Mutating the returned slice must not touch the registry.
	configs[0].Type = "mangled"
	fresh, ok := GetMonitorType("http")
	require.True(t, ok)
	assert.Equal(t, "http", fresh.Type)
}

func TestGetMonitorTypeUnknown(t *testing.T) {
	_, ok := GetMonitorType("database")
	assert.False(t, ok)
}
