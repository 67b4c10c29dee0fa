package main

import "github.com/mcoot/pig-go/internal/cli"

func main() {
	cli.Execute()
}
