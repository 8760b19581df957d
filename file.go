package bluenoise

import (
	"bytes"
	"fmt"
	"os"

	"github.com/voidshard/bluenoise/internal/encoding"
)

// ErrNotScatterFile implies the data we were handed isn't ours.
var ErrNotScatterFile = fmt.Errorf("not a scatter file")

// magic prefixing our binary scatter format
var magic = []byte("BNS1")

// header is magic + seed + mindist + 4 area coords, point data follows
const headerLen = 4 + 8 + 8 + 4*8

// Save writes the scatter as a compact binary file; considerably smaller
// than the json form for large point counts.
//
// Layout (big endian): "BNS1", seed int64, mindist float64, area min/max
// coords (4 float64), point count uint32, then x,y float64 pairs.
func (s *Scatter) Save(fpath string) error {
	buff := new(bytes.Buffer)

	buff.Write(magic)
	buff.Write(encoding.ToBytes64(uint64(s.Seed)))
	buff.Write(encoding.ToBytesF64(s.MinDist))
	buff.Write(encoding.ToBytesF64(s.Area.Min.X))
	buff.Write(encoding.ToBytesF64(s.Area.Min.Y))
	buff.Write(encoding.ToBytesF64(s.Area.Max.X))
	buff.Write(encoding.ToBytesF64(s.Area.Max.Y))
	buff.Write(encoding.ToBytes32(uint32(len(s.Points))))

	for _, p := range s.Points {
		buff.Write(encoding.ToBytesF64(p.X))
		buff.Write(encoding.ToBytesF64(p.Y))
	}

	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// Load reads a scatter previously written with Save.
// Nb. the result carries points & metadata only -- no config or rng --
// so it can be rendered / exported but not re-run.
func Load(fpath string) (*Scatter, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	if len(data) < headerLen+4 || !bytes.Equal(data[:4], magic) {
		return nil, ErrNotScatterFile
	}

	s := &Scatter{
		Seed:    int64(encoding.FromBytes64(data[4:12])),
		MinDist: encoding.FromBytesF64(data[12:20]),
		Area: Box{
			Min: Pt(encoding.FromBytesF64(data[20:28]), encoding.FromBytesF64(data[28:36])),
			Max: Pt(encoding.FromBytesF64(data[36:44]), encoding.FromBytesF64(data[44:52])),
		},
	}

	count := int(encoding.FromBytes32(data[52:56]))
	if len(data) != headerLen+4+count*16 {
		return nil, ErrNotScatterFile
	}

	s.Points = make([]Point, count)
	for i := range s.Points {
		at := headerLen + 4 + i*16
		s.Points[i] = Pt(
			encoding.FromBytesF64(data[at:at+8]),
			encoding.FromBytesF64(data[at+8:at+16]),
		)
	}

	return s, nil
}
