// Command matcalc is a dense linear-algebra calculator.
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/matcalc/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
