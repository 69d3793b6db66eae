package main

import (
	"log"

	"github.com/nfrund/profileview/cmd/profileview/cmd"
)

func main() {
	if err := cmd.Serve(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
