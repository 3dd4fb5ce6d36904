//go:build !js

package gfx

import (
	"io"
	"os"
)

// OpenFile is used to read image and font files. It loads them from disk by
// default; replace it to read from an embedded file system or an archive.
var OpenFile = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
