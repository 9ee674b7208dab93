// Command heros routes patients through a facility and replays triage
// sessions. See `heros --help`.
package main

import (
	"github.com/katalvlaran/heros/internal/cli"
)

func main() {
	cli.Execute()
}
