package main

import "github.com/andrescamacho/spacecargo/internal/adapters/cli"

func main() {
	cli.Execute()
}
