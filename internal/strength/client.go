// Package strength is the client for the password-strength
// microservice. It is a standalone subsystem: nothing in the library
// engine depends on it.
package strength

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"time"
)

// Result is one strength evaluation.
type Result struct {
	Score     string // 0 (weakest) to 4 (strongest)
	CrackTime string // human-readable estimated time to crack
}

// Client queries the strength service, one connection per check.
type Client struct {
	addr    string
	timeout time.Duration
}

// NewClient creates a client for the strength service at addr.
func NewClient(addr string, timeout time.Duration) *Client {
	return &Client{addr: addr, timeout: timeout}
}

// Check sends the password and reads back the score and the estimated
// time to crack.
func (c *Client) Check(password string) (Result, error) {
	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return Result{}, fmt.Errorf("failed to connect to strength service: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return Result{}, fmt.Errorf("failed to set deadline: %w", err)
	}

	if _, err := fmt.Fprintln(conn, password); err != nil {
		return Result{}, fmt.Errorf("failed to send password: %w", err)
	}

	r := bufio.NewReader(conn)
	score, err := r.ReadString('\n')
	if err != nil {
		return Result{}, fmt.Errorf("failed to read score: %w", err)
	}
	crackTime, err := r.ReadString('\n')
	if err != nil {
		return Result{}, fmt.Errorf("failed to read crack time: %w", err)
	}

	return Result{
		Score:     strings.TrimSpace(score),
		CrackTime: strings.TrimSpace(crackTime),
	}, nil
}
