package main

import "github.com/mcoot/snakearcade-go/internal/cli"

func main() {
	cli.Execute()
}
