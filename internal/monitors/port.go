package monitors

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/sitewatch-dev/sitewatch/internal/types"
)

// CheckPort checks whether a TCP port accepts connections.
func CheckPort(ctx context.Context, config *types.PortConfig) Result {
	addr := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))

	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", addr)

	if err != nil {
		return failure(strconv.Itoa(config.Port), fmt.Errorf("port %d is not accessible: %w", config.Port, err))
	}

	conn.Close()

	return success(strconv.Itoa(config.Port))
}
