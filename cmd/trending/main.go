package main

import "trending/internal/cli"

func main() {
	cli.Execute()
}
