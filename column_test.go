package flatcitybuf

import (
	"errors"
	"strings"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/tingold/flatcitybuf/fcb"
)

// testColumn drives the reference encoder used by the round-trip tests.
// String fields are raw bytes so tests can write invalid UTF-8; nil omits
// the field from the buffer entirely.
type testColumn struct {
	name        []byte
	typ         fcb.ColumnType
	title       []byte
	description []byte
	metadata    []byte
	precision   int32
	scale       int32
	nullable    bool
	unique      bool
	primaryKey  bool
}

func defaultTestColumn(name string, typ fcb.ColumnType) testColumn {
	return testColumn{
		name:      []byte(name),
		typ:       typ,
		precision: -1,
		scale:     -1,
		nullable:  true,
	}
}

func buildColumn(b *flatbuffers.Builder, c testColumn) flatbuffers.UOffsetT {
	var nameOff, titleOff, descOff, metaOff flatbuffers.UOffsetT
	if c.metadata != nil {
		metaOff = b.CreateByteString(c.metadata)
	}
	if c.description != nil {
		descOff = b.CreateByteString(c.description)
	}
	if c.title != nil {
		titleOff = b.CreateByteString(c.title)
	}
	if c.name != nil {
		nameOff = b.CreateByteString(c.name)
	}

	fcb.ColumnStart(b)
	if nameOff != 0 {
		fcb.ColumnAddName(b, nameOff)
	}
	fcb.ColumnAddType(b, c.typ)
	if titleOff != 0 {
		fcb.ColumnAddTitle(b, titleOff)
	}
	if descOff != 0 {
		fcb.ColumnAddDescription(b, descOff)
	}
	fcb.ColumnAddPrecision(b, c.precision)
	fcb.ColumnAddScale(b, c.scale)
	fcb.ColumnAddNullable(b, c.nullable)
	fcb.ColumnAddUnique(b, c.unique)
	fcb.ColumnAddPrimaryKey(b, c.primaryKey)
	if metaOff != 0 {
		fcb.ColumnAddMetadata(b, metaOff)
	}
	return fcb.ColumnEnd(b)
}

func encodeColumn(c testColumn) []byte {
	b := flatbuffers.NewBuilder(256)
	b.Finish(buildColumn(b, c))
	return b.FinishedBytes()
}

func TestDecodeColumnMeta_RoundTrip(t *testing.T) {
	c := testColumn{
		name:        []byte("height"),
		typ:         fcb.ColumnTypeDouble,
		title:       []byte("Building height"),
		description: []byte("Height above ground in meters"),
		metadata:    []byte(`{"unit":"m"}`),
		precision:   10,
		scale:       2,
		nullable:    false,
		unique:      true,
		primaryKey:  true,
	}

	meta, err := DecodeColumnMeta(encodeColumn(c))
	if err != nil {
		t.Fatalf("DecodeColumnMeta failed: %v", err)
	}

	if meta.Name != "height" {
		t.Errorf("expected name 'height', got %q", meta.Name)
	}
	if meta.Type != fcb.ColumnTypeDouble {
		t.Errorf("expected type Double, got %v", meta.Type)
	}
	if meta.Title == nil || *meta.Title != "Building height" {
		t.Errorf("unexpected title: %v", meta.Title)
	}
	if meta.Description == nil || *meta.Description != "Height above ground in meters" {
		t.Errorf("unexpected description: %v", meta.Description)
	}
	if meta.Metadata == nil || *meta.Metadata != `{"unit":"m"}` {
		t.Errorf("unexpected metadata: %v", meta.Metadata)
	}
	if meta.Precision != 10 || meta.Scale != 2 {
		t.Errorf("expected precision 10 scale 2, got %d %d", meta.Precision, meta.Scale)
	}
	if meta.Nullable || !meta.Unique || !meta.PrimaryKey {
		t.Errorf("unexpected flags: nullable=%v unique=%v primaryKey=%v",
			meta.Nullable, meta.Unique, meta.PrimaryKey)
	}
}

func TestDecodeColumnMeta_Defaults(t *testing.T) {
	meta, err := DecodeColumnMeta(encodeColumn(defaultTestColumn("id", fcb.ColumnTypeLong)))
	if err != nil {
		t.Fatalf("DecodeColumnMeta failed: %v", err)
	}

	// -1 is the format's "unspecified" convention; it is passed through.
	if meta.Precision != -1 || meta.Scale != -1 {
		t.Errorf("expected sentinel -1 for precision/scale, got %d %d", meta.Precision, meta.Scale)
	}
	if !meta.Nullable || meta.Unique || meta.PrimaryKey {
		t.Errorf("unexpected default flags: nullable=%v unique=%v primaryKey=%v",
			meta.Nullable, meta.Unique, meta.PrimaryKey)
	}
	if meta.Title != nil || meta.Description != nil || meta.Metadata != nil {
		t.Error("expected absent optional strings to decode to nil")
	}
}

// A record without a name decodes to the empty string, never nil. This
// leniency is deliberate and mirrors the upstream implementations; optional
// strings get nil instead.
func TestDecodeColumnMeta_MissingName(t *testing.T) {
	c := defaultTestColumn("", fcb.ColumnTypeInt)
	c.name = nil

	meta, err := DecodeColumnMeta(encodeColumn(c))
	if err != nil {
		t.Fatalf("DecodeColumnMeta failed: %v", err)
	}
	if meta.Name != "" {
		t.Errorf("expected empty name, got %q", meta.Name)
	}
}

func TestDecodeColumnMeta_EmptyOptionalIsNotAbsent(t *testing.T) {
	c := defaultTestColumn("x", fcb.ColumnTypeInt)
	c.title = []byte{}

	meta, err := DecodeColumnMeta(encodeColumn(c))
	if err != nil {
		t.Fatalf("DecodeColumnMeta failed: %v", err)
	}
	if meta.Title == nil || *meta.Title != "" {
		t.Errorf("expected present-but-empty title, got %v", meta.Title)
	}
	if meta.Description != nil {
		t.Errorf("expected nil description, got %v", meta.Description)
	}
}

func TestDecodeColumnMeta_InvalidEnum(t *testing.T) {
	tests := []struct {
		name    string
		typ     fcb.ColumnType
		wantErr bool
	}{
		{"first", fcb.ColumnTypeByte, false},
		{"last", fcb.ColumnTypeBinary, false},
		{"one past last", fcb.ColumnTypeBinary + 1, true},
		{"far out of range", fcb.ColumnType(200), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := DecodeColumnMeta(encodeColumn(defaultTestColumn("c", tt.typ)))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEnum) {
					t.Fatalf("expected ErrInvalidEnum, got %v", err)
				}
				if meta != nil {
					t.Error("expected nil meta on enum error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeColumnMeta failed: %v", err)
			}
			if meta.Type != tt.typ {
				t.Errorf("expected type %v, got %v", tt.typ, meta.Type)
			}
		})
	}
}

func TestDecodeColumnMeta_InvalidEncoding(t *testing.T) {
	c := defaultTestColumn("c", fcb.ColumnTypeString)
	c.description = []byte{0xff, 0xfe, 0xfd}

	_, err := DecodeColumnMeta(encodeColumn(c))
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
	if !strings.Contains(err.Error(), "description") {
		t.Errorf("expected error to name the failing field, got %q", err.Error())
	}
}

func TestDecodeColumnMeta_Malformed(t *testing.T) {
	valid := encodeColumn(defaultTestColumn("a_rather_long_column_name", fcb.ColumnTypeInt))

	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", []byte{}},
		{"too short", []byte{1, 2}},
		{"root offset out of range", []byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0}},
		{"vtable out of range", []byte{4, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}},
		// Copy so the truncation applies to the backing array too: the
		// flatbuffers runtime re-slices up to cap, which would otherwise
		// still see the removed bytes.
		{"truncated", append([]byte(nil), valid[:len(valid)-8]...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := DecodeColumnMeta(tt.buf)
			if !errors.Is(err, ErrMalformedBuffer) {
				t.Fatalf("expected ErrMalformedBuffer, got %v", err)
			}
			if meta != nil {
				t.Error("expected nil meta for malformed buffer")
			}
		})
	}
}

// Decoded values must not alias the input buffer.
func TestDecodeColumnMeta_NoBufferAliasing(t *testing.T) {
	c := defaultTestColumn("population", fcb.ColumnTypeULong)
	c.title = []byte("Population")
	buf := encodeColumn(c)

	meta, err := DecodeColumnMeta(buf)
	if err != nil {
		t.Fatalf("DecodeColumnMeta failed: %v", err)
	}

	for i := range buf {
		buf[i] = 0
	}

	if meta.Name != "population" {
		t.Errorf("name aliased the buffer: %q", meta.Name)
	}
	if meta.Title == nil || *meta.Title != "Population" {
		t.Errorf("title aliased the buffer: %v", meta.Title)
	}
}
