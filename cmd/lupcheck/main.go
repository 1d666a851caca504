// SPDX-License-Identifier: MIT

// Command lupcheck exercises the lupkit kernels from the shell.
//
//	lupcheck selfcheck --n 1000 --seed 7
//	lupcheck det "4 3; 6 3"
//	lupcheck inv "4 3; 6 3" --output latex
//	lupcheck solve "2 1 1; 4 -6 0; -2 7 2" "5 -2 9"
//
// Every flag can also be set through the environment with the LUPCHECK_
// prefix, e.g. LUPCHECK_LOG_LEVEL=debug or LUPCHECK_N=500.
package main

import (
	"os"
)

func main() {
	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if newRootCmd(os.Stdout, os.Stderr).Execute() != nil {
		os.Exit(1)
	}
}
