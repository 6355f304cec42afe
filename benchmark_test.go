package flatcitybuf

import (
	"fmt"
	"testing"

	"github.com/tingold/flatcitybuf/fcb"
)

// generateColumns creates n column descriptors with mixed types.
func generateColumns(n int) []testColumn {
	types := []fcb.ColumnType{
		fcb.ColumnTypeString,
		fcb.ColumnTypeInt,
		fcb.ColumnTypeDouble,
		fcb.ColumnTypeBool,
	}
	cols := make([]testColumn, n)
	for i := 0; i < n; i++ {
		c := defaultTestColumn(fmt.Sprintf("attr_%03d", i), types[i%len(types)])
		c.title = []byte(fmt.Sprintf("Attribute %d", i))
		cols[i] = c
	}
	return cols
}

func BenchmarkDecodeColumnMeta(b *testing.B) {
	c := defaultTestColumn("height", fcb.ColumnTypeDouble)
	c.title = []byte("Building height")
	c.description = []byte("Height above ground in meters")
	buf := encodeColumn(c)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeColumnMeta(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeHeaderMeta(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("columns_%d", n), func(b *testing.B) {
			h := fullTestHeader()
			h.columns = generateColumns(n)
			buf := encodeHeader(h)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := DecodeHeaderMeta(buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNewReaderFromData(b *testing.B) {
	data := encodeFile(encodeHeader(fullTestHeader()), nil)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewReaderFromData(data); err != nil {
			b.Fatal(err)
		}
	}
}
