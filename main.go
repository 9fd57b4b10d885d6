// ffind is a find(1)-like utility for searching a local directory tree.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/ffind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
