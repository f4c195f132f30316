// Command statdemo exercises the statistics library on CSV data: sample
// summaries, hypothesis tests and distribution properties.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "statdemo:", err)
		os.Exit(1)
	}
}
