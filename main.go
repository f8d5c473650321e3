// commandkit plays undoable commands against a small scene of named objects.
package main

import (
	"os"

	"github.com/manav03panchal/commandkit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
