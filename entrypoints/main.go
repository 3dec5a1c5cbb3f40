package main

import (
	"github.com/tblsoft/mcp-perfect-poc/cmd"
)

func main() {
	cmd.Execute()
}
