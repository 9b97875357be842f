package tokens

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/glog"
	"github.com/krancour/dashboard/pkg/file"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const tokenKey = "bearer_token"

// FileStore is a Store backed by a small JSON document on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore that reads and writes the file at path.
// The file and its parent directory are created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

// DefaultPath returns the location of the token file inside the user's home
// directory.
func DefaultPath() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}
	return filepath.Join(homeDir, ".dashctl", "token"), nil
}

func (f *FileStore) Save(token string) {
	if token == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.write(map[string]string{tokenKey: token}); err != nil {
		glog.Errorf("error saving token: %s", err)
	}
}

func (f *FileStore) Get() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		glog.Errorf("error reading token: %s", err)
		return ""
	}
	return doc[tokenKey]
}

func (f *FileStore) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		glog.Errorf("error clearing token at %s: %s", f.path, err)
	}
}

func (f *FileStore) Has() bool {
	return f.Get() != ""
}

func (f *FileStore) read() (map[string]string, error) {
	doc := map[string]string{}
	if !file.Exists(f.path) {
		return doc, nil
	}
	docBytes, err := ioutil.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading token file at %s", f.path)
	}
	if err := json.Unmarshal(docBytes, &doc); err != nil {
		return nil, errors.Wrapf(err, "error parsing token file at %s", f.path)
	}
	return doc, nil
}

func (f *FileStore) write(doc map[string]string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Wrapf(err, "error creating directory %s", dir)
	}
	docBytes, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "error marshaling token file")
	}
	if err := ioutil.WriteFile(f.path, docBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", f.path)
	}
	return nil
}
