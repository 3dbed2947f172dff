package monitors

import (
	"context"
	"fmt"
	"net"
	"os"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"

	"github.com/sitewatch-dev/sitewatch/internal/types"
)

const protocolICMP = 1

// CheckPing sends a single ICMP echo request and waits for the matching
// reply. It opens a raw ICMP socket when permitted and falls back to an
// unprivileged datagram socket otherwise.
func CheckPing(ctx context.Context, config *types.PingConfig) Result {
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", config.Host)

	if err != nil {
		return failure("", fmt.Errorf("failed to resolve %s: %w", config.Host, err))
	}

	if len(ips) == 0 {
		return failure("", fmt.Errorf("no IPv4 address for %s", config.Host))
	}

	target := ips[0]

	conn, privileged, err := listenICMP()

	if err != nil {
		return failure("", fmt.Errorf("failed to open ICMP socket: %w", err))
	}

	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return failure("", err)
		}
	}

	echo := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  1,
			Data: []byte("sitewatch-ping"),
		},
	}

	payload, err := echo.Marshal(nil)

	if err != nil {
		return failure("", err)
	}

	var dst net.Addr = &net.IPAddr{IP: target}

	if !privileged {
		dst = &net.UDPAddr{IP: target}
	}

	if _, err := conn.WriteTo(payload, dst); err != nil {
		return failure("", fmt.Errorf("failed to send echo request: %w", err))
	}

	reply := make([]byte, 1500)

	for {
		n, peer, err := conn.ReadFrom(reply)

		if err != nil {
			return failure("", fmt.Errorf("no echo reply from %s: %w", config.Host, err))
		}

		msg, err := icmp.ParseMessage(protocolICMP, reply[:n])

		if err != nil {
			continue
		}

		if msg.Type != ipv4.ICMPTypeEchoReply {
			continue
		}

		if !peerMatches(peer, target) {
			continue
		}

		return success(target.String())
	}
}

func listenICMP() (*icmp.PacketConn, bool, error) {
	conn, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0")

	if err == nil {
		return conn, true, nil
	}

	conn, err = icmp.ListenPacket("udp4", "0.0.0.0")

	if err != nil {
		return nil, false, err
	}

	return conn, false, nil
}

func peerMatches(peer net.Addr, target net.IP) bool {
	switch addr := peer.(type) {
	case *net.IPAddr:
		return addr.IP.Equal(target)
	case *net.UDPAddr:
		return addr.IP.Equal(target)
	default:
		return false
	}
}
