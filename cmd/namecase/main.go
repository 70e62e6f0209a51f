// Command namecase converts identifiers between naming conventions and
// renders code templates from model name variations.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
