package main

import (
	"fmt"
	"os"

	"minitwit/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "server run into an error: %s\n", err)
		os.Exit(1)
	}
}
