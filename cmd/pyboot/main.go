package main

import "pyboot/internal/cli"

func main() {
	cli.Execute()
}
