// Command strengthcheck is an interactive client for the strengthd
// service: it reads passwords from stdin and prints their score and
// estimated time to crack.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kqimam/game-organizer/internal/strength"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:12345", "strength service address")
	timeout := flag.Duration("timeout", 5*time.Second, "per-check timeout")
	flag.Parse()

	client := strength.NewClient(*addr, *timeout)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("Please enter the password you would like to test: ")
		if !scanner.Scan() {
			return
		}
		password := scanner.Text()

		result, err := client.Check(password)
		if err != nil {
			log.Printf("check failed: %v", err)
			continue
		}

		fmt.Printf("\nPassword: %s\n", password)
		fmt.Printf("Strength Level: %s\n", result.Score)
		fmt.Printf("Time to Crack: %s\n\n", result.CrackTime)
	}
}
