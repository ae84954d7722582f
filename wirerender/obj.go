package wirerender

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/soypat/geometry/ms3"
	"github.com/soypat/gwire"
)

// WriteOBJ writes positions and line segments in Wavefront OBJ format to w.
// Each point is written as a "v" record and each index pair as an "l" record
// with 1-based indices. It returns the number of bytes written.
func WriteOBJ[T gwire.Index](w io.Writer, positions []ms3.Vec, indices []T) (int, error) {
	if len(indices)%2 != 0 {
		return 0, errors.New("odd index count")
	}
	bw := bufio.NewWriter(w)
	var n int
	var buf []byte
	for _, p := range positions {
		buf = append(buf[:0], 'v')
		for _, f := range [3]float32{p.X, p.Y, p.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, float64(f), 'g', -1, 32)
		}
		buf = append(buf, '\n')
		nw, err := bw.Write(buf)
		n += nw
		if err != nil {
			return n, err
		}
	}
	for i := 0; i < len(indices); i += 2 {
		a, b := int(indices[i]), int(indices[i+1])
		if a >= len(positions) || b >= len(positions) {
			return n, errors.New("index out of range of positions")
		}
		buf = append(buf[:0], 'l', ' ')
		buf = strconv.AppendInt(buf, int64(a)+1, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(b)+1, 10)
		buf = append(buf, '\n')
		nw, err := bw.Write(buf)
		n += nw
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
