package monitortypes

import (
	"encoding/json"
	"fmt"

	"github.com/sitewatch-dev/sitewatch/internal/types"
)

// FormatMonitorDetail renders a raw per-check detail value as a human
// readable label for the given monitor type. Unknown types return the
// raw value unchanged.
func FormatMonitorDetail(monitorType, detail string) string {
	if detail == "" {
		return ""
	}

	switch monitorType {
	case types.MonitorTypeHTTP:
		return "Status: " + detail
	case types.MonitorTypePort:
		return "Port: " + detail
	case types.MonitorTypeDNS:
		return "Record: " + detail
	case types.MonitorTypePing:
		return "Response: " + detail
	default:
		return detail
	}
}

// FormatMonitorTitleSuffix builds the parenthesized target suffix shown
// after a monitor's name, derived from its type-specific config. Returns
// an empty string when the config carries no usable target.
func FormatMonitorTitleSuffix(monitorType string, config json.RawMessage) string {
	switch monitorType {
	case types.MonitorTypeHTTP:
		var cfg types.HTTPConfig
		if err := json.Unmarshal(config, &cfg); err != nil || cfg.URL == "" {
			return ""
		}
		return fmt.Sprintf(" (%s)", cfg.URL)
	case types.MonitorTypePing:
		var cfg types.PingConfig
		if err := json.Unmarshal(config, &cfg); err != nil || cfg.Host == "" {
			return ""
		}
		return fmt.Sprintf(" (%s)", cfg.Host)
	case types.MonitorTypePort:
		var cfg types.PortConfig
		if err := json.Unmarshal(config, &cfg); err != nil || cfg.Host == "" {
			return ""
		}
		return fmt.Sprintf(" (%s:%d)", cfg.Host, cfg.Port)
	case types.MonitorTypeDNS:
		var cfg types.DNSConfig
		if err := json.Unmarshal(config, &cfg); err != nil || cfg.Host == "" {
			return ""
		}
		if cfg.RecordType != "" {
			return fmt.Sprintf(" (%s %s)", cfg.Host, cfg.RecordType)
		}
		return fmt.Sprintf(" (%s)", cfg.Host)
	default:
		return ""
	}
}
