//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The level viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/levelview`, or use `go run ./cmd/levelgen -tui` for the terminal viewer.")
	os.Exit(2)
}
