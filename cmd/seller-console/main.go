// Package main is the entry point for the seller-console server.
package main

import (
	"os"

	"github.com/jadehome/seller-console/cmd/seller-console/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
