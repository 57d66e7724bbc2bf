package main

import "github.com/aalvaropc/mallctl/internal/cli"

func main() {
	cli.Execute()
}
