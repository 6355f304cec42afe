package flatcitybuf

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
)

// FormatVersion is the newest FlatCityBuf file revision this package reads.
const FormatVersion = 1

const (
	magicSize      = 8
	headerSizeSize = 4

	// headerMaxSize caps the declared header length, matching the upstream
	// readers. A larger value in the size prefix marks the file malformed.
	headerMaxSize = 512 * 1024 * 1024
)

var magicBytes = [magicSize]byte{'f', 'c', 'b', FormatVersion, 'f', 'c', 'b', 0}

// checkMagic validates the leading magic bytes. The version byte (index 3)
// may be anything up to FormatVersion; the final byte is reserved.
func checkMagic(b []byte) bool {
	if len(b) < magicSize {
		return false
	}
	return b[0] == magicBytes[0] && b[1] == magicBytes[1] && b[2] == magicBytes[2] &&
		b[4] == magicBytes[4] && b[5] == magicBytes[5] && b[6] == magicBytes[6] &&
		b[3] <= FormatVersion
}

// Reader provides access to the metadata of a FlatCityBuf dataset. The
// header is decoded eagerly so a corrupt dataset fails at open time.
type Reader struct {
	meta    *HeaderMeta
	version uint8
}

// NewReader opens a FlatCityBuf file and decodes its header.
func NewReader(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewReaderFromData(data)
}

// NewReaderFromData creates a reader from byte data. The data must start
// with the FlatCityBuf magic bytes followed by a size-prefixed header
// record; the feature and index sections that follow are not interpreted.
func NewReaderFromData(data []byte) (*Reader, error) {
	if !checkMagic(data) {
		return nil, errors.Wrap(ErrMalformedBuffer, "bad magic bytes")
	}
	if len(data) < magicSize+headerSizeSize {
		return nil, errors.Wrap(ErrMalformedBuffer, "missing header size")
	}
	headerSize := binary.LittleEndian.Uint32(data[magicSize:])
	if headerSize > headerMaxSize {
		return nil, errors.Wrap(ErrMalformedBuffer, "header size exceeds limit")
	}
	start := magicSize + headerSizeSize
	end := start + int(headerSize)
	if end > len(data) {
		return nil, errors.Wrap(ErrMalformedBuffer, "header size exceeds buffer")
	}

	meta, err := DecodeHeaderMeta(data[start:end])
	if err != nil {
		return nil, err
	}

	return &Reader{meta: meta, version: data[3]}, nil
}

// Header returns the decoded dataset header.
func (r *Reader) Header() *HeaderMeta {
	return r.meta
}

// FormatVersion returns the file revision recorded in the magic bytes.
func (r *Reader) FormatVersion() uint8 {
	return r.version
}
