package main

import (
	"fmt"
	"os"

	"github.com/crazywolf132/snurr/internal/ui"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Red("Error: ")+err.Error())
		os.Exit(1)
	}
}
