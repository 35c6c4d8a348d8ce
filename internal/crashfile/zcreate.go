// Crash report files, optionally compressed.
package crashfile

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// DefaultPath returns a timestamped, gzip compressed report path under the
// user's state directory, for example
// ~/.local/state/croak/croak-20260827-151405.txt.gz on Linux.
func DefaultPath() string {
	name := "croak-" + time.Now().Format("20060102-150405") + ".txt.gz"
	return filepath.Join(xdg.StateHome, "croak", name)
}

// ZCreate creates filename for writing, compressing based on the file name
// extension: ".gz" and ".xz" get compressed, anything else is written as-is.
// Missing parent directories are created.
func ZCreate(filename string) (io.WriteCloser, error) {
	err := os.MkdirAll(filepath.Dir(filename), 0700)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(filename, ".gz"):
		return &zWriteCloser{gzip.NewWriter(file), file}, nil

	case strings.HasSuffix(filename, ".xz"):
		xzWriter, err := xz.NewWriter(file)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		return &zWriteCloser{xzWriter, file}, nil
	}

	return file, nil
}

// zWriteCloser flushes the compressor before closing the underlying file
type zWriteCloser struct {
	io.WriteCloser
	file *os.File
}

func (z *zWriteCloser) Close() error {
	compressorErr := z.WriteCloser.Close()
	fileErr := z.file.Close()

	if compressorErr != nil {
		return compressorErr
	}
	return fileErr
}
