// Package enrich fetches optional game metadata from the two external
// enrichment services: a plain-TCP description service and an HTTP
// cover-art service. Results are cached on the game entry by the caller,
// so every client call is a single fresh request.
package enrich

import (
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// maxDescriptionBytes bounds how much of the service reply is read.
const maxDescriptionBytes = 16 * 1024

// DescriptionClient fetches game descriptions over one TCP round trip
// per call: connect, send the title, read the reply, close. Connections
// are never reused.
type DescriptionClient struct {
	addr    string
	timeout time.Duration
}

// NewDescriptionClient creates a client for the description service at
// addr (host:port). The timeout bounds the dial and the whole exchange.
func NewDescriptionClient(addr string, timeout time.Duration) *DescriptionClient {
	return &DescriptionClient{addr: addr, timeout: timeout}
}

// Fetch sends the game title and returns the description text. Any
// network failure aborts the attempt; nothing is cached here.
func (c *DescriptionClient) Fetch(title string) (string, error) {
	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return "", fmt.Errorf("failed to connect to description service: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return "", fmt.Errorf("failed to set deadline: %w", err)
	}

	if _, err := conn.Write([]byte(title)); err != nil {
		return "", fmt.Errorf("failed to send title: %w", err)
	}
	// Half-close so the service sees EOF on the request.
	if tc, ok := conn.(*net.TCPConn); ok {
		tc.CloseWrite()
	}

	reply, err := io.ReadAll(io.LimitReader(conn, maxDescriptionBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read description: %w", err)
	}

	text := strings.TrimSpace(string(reply))
	if text == "" {
		return "", fmt.Errorf("description service returned an empty reply")
	}
	return text, nil
}
