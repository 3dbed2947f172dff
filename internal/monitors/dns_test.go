package monitors

import (
	"context"
	"testing"

	"github.com/sitewatch-dev/sitewatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDNSUnsupportedRecordType(t *testing.T) {
	result := CheckDNS(context.Background(), &types.DNSConfig{
		Host:       "example.com",
		RecordType: "SOA",
	})

	assert.False(t, result.Success)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "unsupported DNS record type")
}

func TestCheckDNSRecordTypeNormalized(t *testing.T) {
	// Lowercase with surrounding whitespace still maps to a known
	// record type; resolution of an invalid TLD then fails cleanly.
	result := CheckDNS(context.Background(), &types.DNSConfig{
		Host:       "host.invalid",
		RecordType: "  a  ",
	})

	assert.Equal(t, "A", result.Details)
	assert.False(t, result.Success)
}
