// Command ecckit is a thin CLI wrapper over the ecckit library, wiring
// curve selection, key derivation, WIF envelopes and address formats
// end-to-end through github.com/spf13/cobra — the most common CLI
// framework across the retrieval pack's manifests.
package main

import (
	"os"

	"github.com/wyvernlabs/ecckit/cmd/ecckit/internal/app"
)

func main() {
	if err := app.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
