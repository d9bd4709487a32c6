// Command lvlog writes leveled lines from arguments or stdin through an
// lvlog.Logger. It is a shell-side front end for the same line format the
// library produces:
//
//	lvlog --level warn --timestamp "disk at 91%"
//	tail -f app.out | lvlog --min-level info --color always
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
