// Command quill is the Aetherial Quill: a Victorian writing companion that
// keeps a memory archive, drafts fiction with Gemini and collects vocabulary.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
