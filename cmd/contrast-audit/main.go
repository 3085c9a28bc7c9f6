// Command contrast-audit checks theme colors against WCAG 2.1 AA contrast thresholds.
package main

import (
	"os"

	"github.com/opencode-ai/contrast-audit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
