package watcher

import (
	"fmt"
	"os"
	"path/filepath"
)

func splitWatchPath(p string) (dir string, name string, err error) {
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			// a store file that has not been written yet
			parent := filepath.Dir(p)
			if _, perr := os.Stat(parent); perr != nil {
				return "", "", fmt.Errorf("watch %s: %w", p, err)
			}
			return parent, filepath.Base(p), nil
		}
		return "", "", fmt.Errorf("watch %s: %w", p, err)
	}
	if info.IsDir() {
		return p, "", nil
	}
	return filepath.Dir(p), filepath.Base(p), nil
}
