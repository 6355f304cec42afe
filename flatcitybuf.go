// Package flatcitybuf provides read access to FlatCityBuf datasets:
// CityJSON city models serialized as FlatBuffers. It decodes the dataset
// header and its column schema into plain Go values; feature payloads and
// the spatial index section are left to downstream consumers.
package flatcitybuf

import (
	"unicode/utf8"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"
)

// Common errors returned by this package. Nested decode failures are
// wrapped with the path of the field that failed (e.g. "columns[3]:
// description: ...") and remain matchable with errors.Is.
var (
	ErrMalformedBuffer = errors.New("flatcitybuf: malformed buffer")
	ErrInvalidEnum     = errors.New("flatcitybuf: invalid enum value")
	ErrInvalidEncoding = errors.New("flatcitybuf: invalid string encoding")
)

// verifyRoot bounds-checks the root table reference before any generated
// accessor touches the buffer. The Go FlatBuffers runtime has no verifier,
// so an offset pointing outside the buffer would otherwise panic.
func verifyRoot(buf []byte) error {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return errors.Wrap(ErrMalformedBuffer, "buffer too short")
	}
	root := int(flatbuffers.GetUOffsetT(buf))
	if root < 0 || root+flatbuffers.SizeSOffsetT > len(buf) {
		return errors.Wrap(ErrMalformedBuffer, "root offset out of range")
	}
	vtab := root - int(flatbuffers.GetSOffsetT(buf[root:]))
	if vtab < 0 || vtab+2*flatbuffers.SizeVOffsetT > len(buf) {
		return errors.Wrap(ErrMalformedBuffer, "vtable out of range")
	}
	vlen := int(flatbuffers.GetVOffsetT(buf[vtab:]))
	if vlen < 2*flatbuffers.SizeVOffsetT || vtab+vlen > len(buf) {
		return errors.Wrap(ErrMalformedBuffer, "vtable length out of range")
	}
	return nil
}

// recoverMalformed is the backstop for field offsets that verifyRoot cannot
// see (string, vector and nested table offsets inside the root table). Any
// out-of-bounds access panic becomes ErrMalformedBuffer.
func recoverMalformed(err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrap(ErrMalformedBuffer, "offset out of range")
	}
}

// optionalString decodes a string field that may be absent. Absence maps to
// nil; an empty string stays an empty string. The returned value owns its
// bytes and does not alias the source buffer.
func optionalString(b []byte, field string) (*string, error) {
	if b == nil {
		return nil, nil
	}
	if !utf8.Valid(b) {
		return nil, errors.Wrap(ErrInvalidEncoding, field)
	}
	s := string(b)
	return &s, nil
}

// requiredString decodes a schema-required string field, substituting the
// empty string when the field is missing from the buffer. The upstream
// implementations are lenient here rather than rejecting the record.
func requiredString(b []byte, field string) (string, error) {
	if b == nil {
		return "", nil
	}
	if !utf8.Valid(b) {
		return "", errors.Wrap(ErrInvalidEncoding, field)
	}
	return string(b), nil
}
