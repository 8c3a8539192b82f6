package lib

import (
	"fmt"
	"os"
)

// Exit terminates the program: code 0 when err is nil, otherwise the error
// is printed to stderr and the program exits with code 1.
func Exit(err error) {
	if err == nil {
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
