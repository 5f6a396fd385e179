package render

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

var ErrDestinationExists = errors.New("destination file already exists")

// writeFile streams write into a temporary file next to dest and renames
// it into place once everything was flushed.
func writeFile(dest string, overwrite bool, write func(io.Writer) error) (err error) {
	if err = checkDest(dest, overwrite); err != nil {
		return err
	}

	dir, name := filepath.Split(dest)
	outFile, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", dest, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination for %q: %w", dest, defErr)
		}
		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), dest); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", dest, defErr)
			}
		}
		if !canRename || err != nil {
			if defErr := os.Remove(outFile.Name()); defErr != nil {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", defErr)
			}
		}
	}()

	if err = write(outFile); err != nil {
		return fmt.Errorf("could not encode %q: %w", dest, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush temporary destination for %q: %w", dest, err)
	}

	canRename = true
	return nil
}

func checkDest(dest string, overwrite bool) error {
	info, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
		return nil
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot replace non-regular file %q: %s", dest, info.Mode().String())
	}
	if !overwrite {
		return fmt.Errorf("%w: %q", ErrDestinationExists, dest)
	}
	return nil
}
