package monitors

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/sitewatch-dev/sitewatch/internal/types"
)

// CheckDNS resolves the configured record type for a host and, when an
// expected value is set, verifies it appears in the response. Blank or
// whitespace-only expected values are ignored.
func CheckDNS(ctx context.Context, config *types.DNSConfig) Result {
	resolver := net.DefaultResolver
	recordType := strings.ToUpper(strings.TrimSpace(config.RecordType))
	expected := strings.TrimSpace(config.ExpectedValue)

	var err error

	switch recordType {
	case "A":
		err = checkARecord(ctx, resolver, config.Host, expected)
	case "AAAA":
		err = checkAAAARecord(ctx, resolver, config.Host, expected)
	case "CNAME":
		err = checkCNAMERecord(ctx, resolver, config.Host, expected)
	case "MX":
		err = checkMXRecord(ctx, resolver, config.Host, expected)
	case "TXT":
		err = checkTXTRecord(ctx, resolver, config.Host, expected)
	case "NS":
		err = checkNSRecord(ctx, resolver, config.Host, expected)
	default:
		return failure(recordType, fmt.Errorf("unsupported DNS record type: %s", config.RecordType))
	}

	if err != nil {
		return failure(recordType, err)
	}

	return success(recordType)
}

func checkARecord(ctx context.Context, resolver *net.Resolver, host, expected string) error {
	ips, err := resolver.LookupIPAddr(ctx, host)

	if err != nil {
		return fmt.Errorf("failed to resolve A record for %s: %w", host, err)
	}

	var ipv4Found bool

	for _, ip := range ips {
		if ip.IP.To4() == nil {
			continue
		}

		ipv4Found = true

		if expected != "" {
			expectedIP := net.ParseIP(expected)

			if expectedIP != nil && ip.IP.Equal(expectedIP) {
				return nil
			}
		}
	}

	if !ipv4Found {
		return fmt.Errorf("no A records found for %s", host)
	}

	if expected != "" {
		if net.ParseIP(expected) == nil {
			return fmt.Errorf("invalid expected IP: %s", expected)
		}

		return fmt.Errorf("expected IP %s not found in DNS response", expected)
	}

	return nil
}

func checkAAAARecord(ctx context.Context, resolver *net.Resolver, host, expected string) error {
	ips, err := resolver.LookupIPAddr(ctx, host)

	if err != nil {
		return fmt.Errorf("failed to resolve AAAA record for %s: %w", host, err)
	}

	var ipv6Found bool

	for _, ip := range ips {
		if ip.IP.To4() != nil {
			continue
		}

		ipv6Found = true

		if expected != "" {
			expectedIP := net.ParseIP(expected)

			if expectedIP != nil && ip.IP.Equal(expectedIP) {
				return nil
			}
		}
	}

	if !ipv6Found {
		return fmt.Errorf("no AAAA records found for %s", host)
	}

	if expected != "" {
		return fmt.Errorf("expected IPv6 %s not found in DNS response", expected)
	}

	return nil
}

func checkCNAMERecord(ctx context.Context, resolver *net.Resolver, host, expected string) error {
	cname, err := resolver.LookupCNAME(ctx, host)

	if err != nil {
		return fmt.Errorf("failed to resolve CNAME for %s: %w", host, err)
	}

	if expected != "" && !strings.EqualFold(strings.TrimSuffix(cname, "."), strings.TrimSuffix(expected, ".")) {
		return fmt.Errorf("expected CNAME %s, got %s", expected, cname)
	}

	return nil
}

func checkMXRecord(ctx context.Context, resolver *net.Resolver, host, expected string) error {
	mxRecords, err := resolver.LookupMX(ctx, host)

	if err != nil {
		return fmt.Errorf("failed to resolve MX records for %s: %w", host, err)
	}

	if len(mxRecords) == 0 {
		return fmt.Errorf("no MX records found for %s", host)
	}

	if expected != "" {
		for _, mx := range mxRecords {
			if strings.EqualFold(strings.TrimSuffix(mx.Host, "."), strings.TrimSuffix(expected, ".")) {
				return nil
			}
		}

		return fmt.Errorf("expected MX record %s not found", expected)
	}

	return nil
}

func checkTXTRecord(ctx context.Context, resolver *net.Resolver, host, expected string) error {
	txtRecords, err := resolver.LookupTXT(ctx, host)

	if err != nil {
		return fmt.Errorf("failed to resolve TXT records for %s: %w", host, err)
	}

	if len(txtRecords) == 0 {
		return fmt.Errorf("no TXT records found for %s", host)
	}

	if expected != "" {
		for _, txt := range txtRecords {
			if txt == expected {
				return nil
			}
		}

		return fmt.Errorf("expected TXT record content %s not found", expected)
	}

	return nil
}

func checkNSRecord(ctx context.Context, resolver *net.Resolver, host, expected string) error {
	nsRecords, err := resolver.LookupNS(ctx, host)

	if err != nil {
		return fmt.Errorf("failed to resolve NS records for %s: %w", host, err)
	}

	if len(nsRecords) == 0 {
		return fmt.Errorf("no NS records found for %s", host)
	}

	if expected != "" {
		for _, ns := range nsRecords {
			if strings.EqualFold(strings.TrimSuffix(ns.Host, "."), strings.TrimSuffix(expected, ".")) {
				return nil
			}
		}

		return fmt.Errorf("expected NS record %s not found", expected)
	}

	return nil
}
