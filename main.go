// ./main.go
package main

import (
	"github.com/wrenhollow/bluebot/cmd"
)

// main is the entry point for the bluebot application.
func main() {
	cmd.Execute()
}
