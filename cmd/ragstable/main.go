// Package main implements the ragstable binary.
package main

import "github.com/Vec-io/RAGs.FYI/internal/cli"

func main() {
	cli.DoCLI()
}
