package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Relative paths resolve against the root given to NewMemoryFileSystem.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile // map of absolute path -> file
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  path.Clean(filepath.ToSlash(root)),
	}
	mfs.addDir(mfs.root)
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	mfs.files[absPath] = &memoryFile{
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}

	for dir := path.Dir(absPath); ; dir = path.Dir(dir) {
		if _, exists := mfs.files[dir]; !exists {
			mfs.addDir(dir)
		}
		if dir == "/" || dir == "." {
			break
		}
	}
}

// Remove deletes a file from the in-memory filesystem.
func (mfs *MemoryFileSystem) Remove(filePath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	delete(mfs.files, mfs.resolve(filePath))
}

func (mfs *MemoryFileSystem) addDir(dir string) {
	mfs.files[dir] = &memoryFile{
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) lookup(p string) (*memoryFile, bool) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	file, exists := mfs.files[mfs.resolve(p)]
	return file, exists
}

// Exists implements FileSystemProvider.Exists
func (mfs *MemoryFileSystem) Exists(filePath string) bool {
	_, exists := mfs.lookup(filePath)
	return exists
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.lookup(filePath)
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if file.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return file.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.lookup(statPath)
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}
