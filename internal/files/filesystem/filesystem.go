package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider is the loader's view of local storage: it reads the
// loader document and checks that every resolved data file is present
// before a COPY statement is generated for it.
type FileSystemProvider interface {
	// Exists reports whether a file or directory is present at path.
	// Any error while checking is reported as absence.
	Exists(path string) bool

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
