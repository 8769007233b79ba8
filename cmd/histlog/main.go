package main

import (
	"errors"
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"

	"github.com/aachraf94/Browser-History-Logger/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		// go-flags prints its own parse errors; only surface the rest.
		var flagsErr *goflags.Error
		if !errors.As(err, &flagsErr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
