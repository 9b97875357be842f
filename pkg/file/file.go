package file

import "os"

// Exists returns a bool indicating whether the provided file path exists.
func Exists(path string) bool {
	if _, err := os.Stat(path); err != nil && os.IsNotExist(err) {
		return false
	}
	return true
}
