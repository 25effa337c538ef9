// Command vmbb runs the Branch-and-Bound VM-placement search against a
// generated or configured problem and reports the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
