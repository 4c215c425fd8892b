// Package main is the entry point for the sc CLI client.
package main

import (
	"github.com/jadehome/seller-console/cmd/sc/cmd"
)

func main() {
	cmd.Execute()
}
