package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// partSuffix marks a file whose body is still being written
const partSuffix = ".part"

// Manager owns the output directory and the files written into it
type Manager struct {
	outputDir string
}

// NewManager creates a storage manager for dir. The directory is not
// touched until EnsureDir is called.
func NewManager(outputDir string) *Manager {
	return &Manager{outputDir: outputDir}
}

// EnsureDir creates the output directory if it is missing
func (m *Manager) EnsureDir() error {
	if err := os.MkdirAll(m.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Path joins the output directory and name
func (m *Manager) Path(name string) string {
	return filepath.Join(m.outputDir, name)
}

// Exists reports whether anything, including a directory, is present at
// name. Any Stat error counts as absent.
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.Path(name))
	return err == nil
}

// CreatePending opens a pending file for path, whose parent directory must
// already exist. Bytes are written to a sibling .part file and only appear
// under path after Commit.
func CreatePending(path string) (*PendingFile, error) {
	temp := path + partSuffix

	f, err := os.OpenFile(temp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	return &PendingFile{file: f, tempPath: temp, finalPath: path}, nil
}

// PendingFile is a file being written that has not yet been committed
type PendingFile struct {
	file      *os.File
	tempPath  string
	finalPath string
	done      bool
}

// Write appends p to the temporary file
func (p *PendingFile) Write(b []byte) (int, error) {
	return p.file.Write(b)
}

// Path is the final path the file will have once committed
func (p *PendingFile) Path() string {
	return p.finalPath
}

// Commit closes the temporary file and renames it onto the final path,
// replacing anything already there.
func (p *PendingFile) Commit() error {
	if p.done {
		return errors.New("pending file already finished")
	}
	p.done = true

	if err := p.file.Close(); err != nil {
		os.Remove(p.tempPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(p.tempPath, p.finalPath); err != nil {
		os.Remove(p.tempPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (p *PendingFile) Abort() error {
	if p.done {
		return nil
	}
	p.done = true

	closeErr := p.file.Close()
	if err := os.Remove(p.tempPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove temporary file: %w", err)
	}
	return closeErr
}
