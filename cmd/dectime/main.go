package main

import "github.com/astrocycle/dectime/internal/cli"

func main() {
	cli.Execute()
}
