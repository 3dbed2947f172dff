package monitortypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMonitorDetail(t *testing.T) {
	tests := []struct {
		name        string
		monitorType string
		detail      string
		want        string
	}{
		{"http gets status prefix", "http", "200", "Status: 200"},
		{"port gets port prefix", "port", "open", "Port: open"},
		{"dns gets record prefix", "dns", "93.184.216.34", "Record: 93.184.216.34"},
		{"ping gets response prefix", "ping", "12ms", "Response: 12ms"},
		{"unknown type passes through", "database", "connected", "connected"},
		{"empty detail stays empty", "http", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMonitorDetail(tt.monitorType, tt.detail))
		})
	}
}

func TestFormatMonitorTitleSuffix(t *testing.T) {
	tests := []struct {
		name        string
		monitorType string
		config      string
		want        string
	}{
		{"http url", "http", `{"url":"https://example.com"}`, " (https://example.com)"},
		{"ping host", "ping", `{"host":"example.com"}`, " (example.com)"},
		{"port host and port", "port", `{"host":"example.com","port":443}`, " (example.com:443)"},
		{"dns host with record type", "dns", `{"host":"example.com","record_type":"MX"}`, " (example.com MX)"},
		{"dns host without record type", "dns", `{"host":"example.com"}`, " (example.com)"},
		{"empty target yields nothing", "http", `{}`, ""},
		{"malformed config yields nothing", "port", `{`, ""},
		{"unknown type yields nothing", "database", `{"host":"db"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMonitorTitleSuffix(tt.monitorType, json.RawMessage(tt.config)))
		})
	}
}
