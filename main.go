package main

import (
	"countrypick/internal/cli"
)

func main() {
	cli.Execute()
}
