package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Read the named resource. A resource that does not exist is not an error and
// results in an empty string. Leading and trailing white space is removed
func Read(filename string) (string, error) {
	pth, err := JoinPath(filename)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("resources: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

// Write content to the named resource. The resource is replaced by renaming a
// temporary file in the same directory
func Write(filename string, content string) error {
	pth, err := JoinPath(filename)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(pth), filepath.Base(pth)+".*")
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}

	_, err = f.WriteString(content)
	err = errors.Join(err, f.Close())
	if err == nil {
		err = os.Rename(f.Name(), pth)
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("resources: %w", err)
	}

	return nil
}
