// Command strengthd is the password-strength microservice: it accepts a
// password over TCP, scores it with zxcvbn, and replies with the score
// and the estimated time to crack, one per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/nbutton23/zxcvbn-go"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:12345", "address to listen on")
	flag.Parse()

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", *addr, err)
	}
	log.Printf("strength service listening on %s", *addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Printf("accept failed: %v", err)
			continue
		}
		go handle(conn)
	}
}

// handle scores one password and closes the connection.
func handle(conn net.Conn) {
	defer conn.Close()

	password, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		log.Printf("failed to read password: %v", err)
		return
	}
	password = strings.TrimRight(password, "\r\n")

	result := zxcvbn.PasswordStrength(password, nil)

	// Of zxcvbn's crack-time estimates this service reports the
	// offline fast-hashing one.
	if _, err := fmt.Fprintf(conn, "%d\n%s\n", result.Score, result.CrackTimeDisplay); err != nil {
		log.Printf("failed to write reply: %v", err)
	}
}
