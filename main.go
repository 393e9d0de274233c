package main

import (
	"github.com/mlind/helpkit/cmd"
)

func main() {
	cmd.Execute()
}
