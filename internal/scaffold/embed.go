package scaffold

import (
	"embed"
	"io/fs"
	"os"
)

// LicenseFile is the name of the bundled license at the template root.
const LicenseFile = "LICENSE"

//go:embed templates
var embedded embed.FS

// DefaultTemplates returns the template root compiled into the binary.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// DirTemplates returns a template root backed by dir on disk.
func DirTemplates(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &IOError{Op: "locate", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &IOError{Op: "locate", Path: dir, Err: fs.ErrInvalid}
	}
	return os.DirFS(dir), nil
}
