package monitors

import (
	"context"
	"net"
	"testing"

	"github.com/sitewatch-dev/sitewatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	ctx := context.Background()

	t.Run("open port is up", func(t *testing.T) {
		result := CheckPort(ctx, &types.PortConfig{Host: "127.0.0.1", Port: port})

		assert.True(t, result.Success)
		assert.NoError(t, result.Err)
	})

	t.Run("closed port is down", func(t *testing.T) {
		closed, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		closedPort := closed.Addr().(*net.TCPAddr).Port
		closed.Close()

		result := CheckPort(ctx, &types.PortConfig{Host: "127.0.0.1", Port: closedPort})

		assert.False(t, result.Success)
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), "not accessible")
	})

	t.Run("canceled context is down", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		result := CheckPort(canceled, &types.PortConfig{Host: "127.0.0.1", Port: port})

		assert.False(t, result.Success)
	})
}
