// Package main provides the runboard CLI.
package main

import "github.com/runboard-dev/runboard/internal/cli"

func main() {
	cli.Execute()
}
