// Package filesystem provides the local storage abstraction used by the loader.
//
// The loader touches the filesystem in two places: reading the loader
// document, and checking that each date's data file exists before a COPY
// statement is generated for it. Both go through FileSystemProvider so the
// statement generator can be tested without real files.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
