package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// generatedHeader marks files this generator owns.
var generatedHeader = []byte("// Code generated by builder-generator. DO NOT EDIT.")

// ErrNotGenerated is returned by WriteFiles when the target path holds a
// file that was not produced by this generator.
var ErrNotGenerated = errors.New("refusing to overwrite a file without the generated header")

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist. Existing files are only
// replaced if they start with the generated-code header.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := checkOwned(outputPath); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// checkOwned returns nil if path does not exist or holds generated code.
func checkOwned(path string) error {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	if !bytes.HasPrefix(existing, generatedHeader) {
		return ErrNotGenerated
	}

	return nil
}
