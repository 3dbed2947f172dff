package types

// Monitor type discriminants. Exactly one of the config variants below is
// populated per monitor, selected by its type.
const (
	MonitorTypeHTTP = "http"
	MonitorTypePing = "ping"
	MonitorTypePort = "port"
	MonitorTypeDNS  = "dns"
)

// Monitor statuses.
const (
	StatusUp      = "up"
	StatusDown    = "down"
	StatusPending = "pending"
	StatusPaused  = "paused"
)

func ValidMonitorType(t string) bool {
	switch t {
	case MonitorTypeHTTP, MonitorTypePing, MonitorTypePort, MonitorTypeDNS:
		return true
	}
	return false
}

type HTTPConfig struct {
	Method         string            `json:"method"`
	URL            string            `json:"url"`
	Headers        map[string]string `json:"headers"`
	ExpectedStatus int               `json:"expected_status"` // 0 accepts any 2xx/3xx
}

type PingConfig struct {
	Host string `json:"host"`
}

type PortConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type DNSConfig struct {
	Host          string `json:"host"`
	RecordType    string `json:"record_type"`              // A, AAAA, CNAME, MX, TXT, NS
	ExpectedValue string `json:"expected_value,omitempty"` // Expected IP/value (optional)
}
