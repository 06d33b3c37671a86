/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package main

import (
	"fmt"
	"os"
)

// journalstat entry
func main() {
	if err := bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "journalstat: %+v\n", err)
		os.Exit(1)
	}
}
