package main

import (
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return Error.New("goimports %s: %v", filepath.Base(path), err)
	}
	return Error.Wrap(os.WriteFile(path, formatted, 0o644))
}
