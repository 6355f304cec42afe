package flatcitybuf

import (
	"github.com/pkg/errors"

	"github.com/tingold/flatcitybuf/fcb"
)

// ColumnMeta describes one attribute column of a dataset. Values are fully
// materialized at decode time and never reference the source buffer.
type ColumnMeta struct {
	// Name is schema-required; a buffer that omits it decodes to "" rather
	// than failing. Absent optional strings decode to nil instead.
	Name        string
	Type        fcb.ColumnType
	Title       *string
	Description *string

	// Precision and Scale use -1 as the upstream "unspecified" convention.
	// The value is passed through, not interpreted.
	Precision int32
	Scale     int32

	Nullable   bool
	Unique     bool
	PrimaryKey bool
	Metadata   *string
}

// DecodeColumnMeta decodes a single column record rooted at offset 0 of buf.
// The buffer is never mutated and may be shared across concurrent calls.
func DecodeColumnMeta(buf []byte) (meta *ColumnMeta, err error) {
	defer recoverMalformed(&err)
	if err := verifyRoot(buf); err != nil {
		return nil, err
	}
	return columnFromFCB(fcb.GetRootAsColumn(buf, 0))
}

func columnFromFCB(col *fcb.Column) (*ColumnMeta, error) {
	typ := col.Type()
	if _, ok := fcb.EnumNamesColumnType[typ]; !ok {
		return nil, errors.Wrapf(ErrInvalidEnum, "type %d", typ)
	}

	name, err := requiredString(col.Name(), "name")
	if err != nil {
		return nil, err
	}
	title, err := optionalString(col.Title(), "title")
	if err != nil {
		return nil, err
	}
	description, err := optionalString(col.Description(), "description")
	if err != nil {
		return nil, err
	}
	metadata, err := optionalString(col.Metadata(), "metadata")
	if err != nil {
		return nil, err
	}

	return &ColumnMeta{
		Name:        name,
		Type:        typ,
		Title:       title,
		Description: description,
		Precision:   col.Precision(),
		Scale:       col.Scale(),
		Nullable:    col.Nullable(),
		Unique:      col.Unique(),
		PrimaryKey:  col.PrimaryKey(),
		Metadata:    metadata,
	}, nil
}
