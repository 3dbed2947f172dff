// Package monitortypes holds the static registry of monitor type schemas:
// the field definitions that drive client form rendering, plus the
// validation and formatting helpers exposed over the API.
package monitortypes

import "github.com/sitewatch-dev/sitewatch/internal/types"

// FieldType is the closed set of form field kinds a schema may use.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldURL    FieldType = "url"
	FieldSelect FieldType = "select"
)

type FieldDefinition struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	HelpText    string    `json:"help_text,omitempty"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
	Options     []string  `json:"options,omitempty"`
}

type Config struct {
	Type        string            `json:"type"`
	DisplayName string            `json:"display_name"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Fields      []FieldDefinition `json:"fields"`
}

func float64Ptr(v float64) *float64 { return &v }

// registry order is the order types are presented to clients.
var registry = []Config{
	{
		Type:        types.MonitorTypeHTTP,
		DisplayName: "HTTP (Website/API)",
		Description: "Monitors a URL for HTTP availability and expected status",
		Version:     "1.0.0",
		Fields: []FieldDefinition{
			{
				Name:        "url",
				Label:       "URL",
				Type:        FieldURL,
				Required:    true,
				Placeholder: "https://example.com",
				HelpText:    "The full URL to check, including the scheme",
			},
			{
				Name:     "method",
				Label:    "Method",
				Type:     FieldSelect,
				Required: false,
				Options:  []string{"GET", "HEAD", "POST"},
				HelpText: "HTTP method used for the check (defaults to GET)",
			},
			{
				Name:     "expected_status",
				Label:    "Expected status",
				Type:     FieldNumber,
				Required: false,
				Min:      float64Ptr(100),
				Max:      float64Ptr(599),
				HelpText: "Exact status code to expect; any 2xx/3xx when unset",
			},
		},
	},
	{
		Type:        types.MonitorTypePing,
		DisplayName: "Ping",
		Description: "Checks host reachability with ICMP echo requests",
		Version:     "1.0.0",
		Fields: []FieldDefinition{
			{
				Name:        "host",
				Label:       "Host",
				Type:        FieldText,
				Required:    true,
				Placeholder: "example.com",
				HelpText:    "Hostname or IP address to ping",
			},
		},
	},
	{
		Type:        types.MonitorTypePort,
		DisplayName: "Port (Host/Port)",
		Description: "Checks whether a TCP port accepts connections",
		Version:     "1.0.0",
		Fields: []FieldDefinition{
			{
				Name:        "host",
				Label:       "Host",
				Type:        FieldText,
				Required:    true,
				Placeholder: "example.com",
			},
			{
				Name:     "port",
				Label:    "Port",
				Type:     FieldNumber,
				Required: true,
				Min:      float64Ptr(1),
				Max:      float64Ptr(65535),
			},
		},
	},
	{
		Type:        types.MonitorTypeDNS,
		DisplayName: "DNS (Domain Resolution)",
		Description: "Resolves a DNS record and optionally matches its value",
		Version:     "1.0.0",
		Fields: []FieldDefinition{
			{
				Name:        "host",
				Label:       "Host",
				Type:        FieldText,
				Required:    true,
				Placeholder: "example.com",
			},
			{
				Name:     "record_type",
				Label:    "Record type",
				Type:     FieldSelect,
				Required: true,
				Options:  []string{"A", "AAAA", "CNAME", "MX", "TXT", "NS"},
			},
			{
				Name:     "expected_value",
				Label:    "Expected value",
				Type:     FieldText,
				Required: false,
				HelpText: "Record value to match; leave empty to only verify resolution",
			},
		},
	},
}

// GetMonitorTypes returns all registered schemas in presentation order.
func GetMonitorTypes() []Config {
	out := make([]Config, len(registry))
	copy(out, registry)
	return out
}

// GetMonitorType returns the schema for a single type, if registered.
func GetMonitorType(monitorType string) (Config, bool) {
	for _, cfg := range registry {
		if cfg.Type == monitorType {
			return cfg, true
		}
	}

	return Config{}, false
}
