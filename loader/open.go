package loader

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/klauspost/compress/gzip"
)

// source is an opened input with its resolved format.
type source struct {
	io.Reader
	path   string
	format Format
	closer []io.Closer
}

func (s *source) Close() error {
	var errs []error
	for i := len(s.closer) - 1; i >= 0; i-- {
		errs = append(errs, s.closer[i].Close())
	}

	return errors.Join(errs...)
}

// open resolves the format of path and returns a decompressed reader.
func open(path string, o Options) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Path: path, Err: ErrResourceNotFound}
		}
		return nil, &Error{Path: path, Err: err}
	}

	format, gz := DetectFormat(path)
	if o.Format != FormatAuto {
		format = o.Format
	}
	src := &source{Reader: f, path: path, format: format, closer: []io.Closer{f}}
	if gz {
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, malformed(path, 0, "gzip: %v", err)
		}
		src.Reader = zr
		src.closer = append(src.closer, zr)
	}

	return src, nil
}
