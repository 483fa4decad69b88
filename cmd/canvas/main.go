// Command canvas serves and renders strategy canvases.
package main

import (
	"fmt"
	"os"

	"github.com/banshee-data/strategy.canvas/internal/fsutil"
)

func main() {
	if err := newRootCmd(fsutil.OSFileSystem{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
