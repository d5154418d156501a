package enrich

import (
	"io"
	"net"
	"testing"
	"time"
)

// fakeDescriptionService accepts one connection, records the request,
// and replies with the given text.
func fakeDescriptionService(t *testing.T, reply string) (addr string, requests chan string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	requests = make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		req, _ := io.ReadAll(conn)
		requests <- string(req)
		conn.Write([]byte(reply))
	}()

	return ln.Addr().String(), requests
}

func TestDescriptionFetch(t *testing.T) {
	addr, requests := fakeDescriptionService(t, "An unofficial remake of Metroid II.")
	client := NewDescriptionClient(addr, 2*time.Second)

	text, err := client.Fetch("AM2R")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if text != "An unofficial remake of Metroid II." {
		t.Errorf("description = %q", text)
	}
	if got := <-requests; got != "AM2R" {
		t.Errorf("service received %q, want AM2R", got)
	}
}

func TestDescriptionFetchEmptyReply(t *testing.T) {
	addr, _ := fakeDescriptionService(t, "  \n")
	client := NewDescriptionClient(addr, 2*time.Second)

	if _, err := client.Fetch("AM2R"); err == nil {
		t.Fatal("expected error for empty reply")
	}
}

func TestDescriptionFetchConnectFailure(t *testing.T) {
	// A listener that is closed immediately leaves a port nothing is
	// listening on.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	client := NewDescriptionClient(addr, 500*time.Millisecond)
	if _, err := client.Fetch("AM2R"); err == nil {
		t.Fatal("expected connection error")
	}
}
