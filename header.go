package flatcitybuf

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/tingold/flatcitybuf/fcb"
)

// Transform holds the quantization transform of a dataset: real-world
// coordinate = vertex * scale + translate. It is surfaced, not applied.
type Transform struct {
	Scale     [3]float64
	Translate [3]float64
}

// GeographicalExtent is the 3D bounding box of a dataset.
type GeographicalExtent struct {
	Min [3]float64
	Max [3]float64
}

// Bound returns the 2D footprint of the extent for use with orb-based
// viewport and tiling code.
func (e GeographicalExtent) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{e.Min[0], e.Min[1]},
		Max: orb.Point{e.Max[0], e.Max[1]},
	}
}

// ReferenceSystem identifies the coordinate reference system of a dataset,
// e.g. authority "EPSG" with code 7415. No reprojection is performed here.
type ReferenceSystem struct {
	Authority  string
	Version    int32
	Code       int32
	CodeString *string
}

// HeaderMeta is the decoded dataset header: schema, spatial index
// parameters, extent and provenance metadata. Like ColumnMeta it owns all
// of its data and holds no reference into the source buffer.
type HeaderMeta struct {
	Transform Transform

	// Columns preserves declaration order; attribute value arrays elsewhere
	// in the format are positionally keyed to it.
	Columns []ColumnMeta

	FeaturesCount uint64

	// IndexNodeSize is the branching factor of the packed spatial index
	// that follows the header. Zero means the dataset carries no index.
	IndexNodeSize uint16

	GeographicalExtent *GeographicalExtent
	ReferenceSystem    *ReferenceSystem

	Identifier    *string
	ReferenceDate *string
	Title         *string

	// Point of contact, flattened into the header as in the schema.
	ContactName    *string
	ContactType    *string
	ContactRole    *string
	ContactPhone   *string
	ContactEmail   *string
	ContactWebsite *string

	AddressNumber   *string
	AddressStreet   *string
	AddressLocality *string
	AddressPostcode *string
	AddressCountry  *string

	// Attributes is an ordered index list referencing Columns or an
	// external attribute dictionary; order and duplicates are preserved.
	Attributes []uint32

	// Version is the CityJSON version string the dataset was built from.
	Version *string
}

// DecodeHeaderMeta decodes a dataset header rooted at offset 0 of buf.
// Decoding is all-or-nothing: any nested failure aborts the whole decode
// and the returned error carries the path of the failing field.
func DecodeHeaderMeta(buf []byte) (meta *HeaderMeta, err error) {
	defer recoverMalformed(&err)
	if err := verifyRoot(buf); err != nil {
		return nil, err
	}
	return headerFromFCB(fcb.GetRootAsHeader(buf, 0))
}

func headerFromFCB(h *fcb.Header) (*HeaderMeta, error) {
	meta := &HeaderMeta{
		FeaturesCount: h.FeaturesCount(),
		IndexNodeSize: h.IndexNodeSize(),
	}

	if t := h.Transform(nil); t != nil {
		meta.Transform = Transform{
			Scale:     vec3(t.Scale(nil)),
			Translate: vec3(t.Translate(nil)),
		}
	}
	if e := h.GeographicalExtent(nil); e != nil {
		meta.GeographicalExtent = &GeographicalExtent{
			Min: vec3(e.Min(nil)),
			Max: vec3(e.Max(nil)),
		}
	}

	if rs := h.ReferenceSystem(nil); rs != nil {
		authority, err := requiredString(rs.Authority(), "authority")
		if err != nil {
			return nil, errors.WithMessage(err, "reference_system")
		}
		codeString, err := optionalString(rs.CodeString(), "code_string")
		if err != nil {
			return nil, errors.WithMessage(err, "reference_system")
		}
		meta.ReferenceSystem = &ReferenceSystem{
			Authority:  authority,
			Version:    rs.Version(),
			Code:       rs.Code(),
			CodeString: codeString,
		}
	}

	// A vector cannot hold more elements than the buffer has bytes; reject
	// wire-declared lengths up front so a corrupted length word cannot
	// drive a huge allocation the panic backstop would never see.
	buflen := len(h.Table().Bytes)
	if h.ColumnsLength()*flatbuffers.SizeUOffsetT > buflen {
		return nil, errors.Wrap(ErrMalformedBuffer, "columns length out of range")
	}
	if h.AttributesLength()*flatbuffers.SizeUint32 > buflen {
		return nil, errors.Wrap(ErrMalformedBuffer, "attributes length out of range")
	}

	// Fail fast on the first bad column; no partial header is returned.
	meta.Columns = make([]ColumnMeta, 0, h.ColumnsLength())
	for i := 0; i < h.ColumnsLength(); i++ {
		var col fcb.Column
		if !h.Columns(&col, i) {
			return nil, errors.Wrapf(ErrMalformedBuffer, "columns[%d]", i)
		}
		cm, err := columnFromFCB(&col)
		if err != nil {
			return nil, errors.WithMessagef(err, "columns[%d]", i)
		}
		meta.Columns = append(meta.Columns, *cm)
	}

	meta.Attributes = make([]uint32, h.AttributesLength())
	for i := range meta.Attributes {
		meta.Attributes[i] = h.Attributes(i)
	}

	for _, f := range []struct {
		dst  **string
		raw  []byte
		name string
	}{
		{&meta.Identifier, h.Identifier(), "identifier"},
		{&meta.ReferenceDate, h.ReferenceDate(), "reference_date"},
		{&meta.Title, h.Title(), "title"},
		{&meta.ContactName, h.PocContactName(), "poc_contact_name"},
		{&meta.ContactType, h.PocContactType(), "poc_contact_type"},
		{&meta.ContactRole, h.PocRole(), "poc_role"},
		{&meta.ContactPhone, h.PocPhone(), "poc_phone"},
		{&meta.ContactEmail, h.PocEmail(), "poc_email"},
		{&meta.ContactWebsite, h.PocWebsite(), "poc_website"},
		{&meta.AddressNumber, h.PocAddressThoroughfareNumber(), "poc_address_thoroughfare_number"},
		{&meta.AddressStreet, h.PocAddressThoroughfareName(), "poc_address_thoroughfare_name"},
		{&meta.AddressLocality, h.PocAddressLocality(), "poc_address_locality"},
		{&meta.AddressPostcode, h.PocAddressPostcode(), "poc_address_postcode"},
		{&meta.AddressCountry, h.PocAddressCountry(), "poc_address_country"},
		{&meta.Version, h.Version(), "version"},
	} {
		s, err := optionalString(f.raw, f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = s
	}

	return meta, nil
}

func vec3(v *fcb.Vector) [3]float64 {
	if v == nil {
		return [3]float64{}
	}
	return [3]float64{v.X(), v.Y(), v.Z()}
}
