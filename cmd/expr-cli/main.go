// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		// Commands that fail on input have already printed diagnostics.
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
