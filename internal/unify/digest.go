package unify

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/roach88/buildarray/internal/scalar"
)

// DomainContainer prefixes container digests. The version suffix allows the
// encoding to change later without colliding with old digests.
const DomainContainer = "buildarray/container/v1"

// Bytes returns the elements packed back to back in little-endian order,
// each occupying exactly Kind().Size() bytes. The result is always
// Len()*Kind().Size() bytes long.
func (c Container) Bytes() []byte {
	size := c.kind.Size()
	buf := make([]byte, 0, len(c.elems)*size)
	for _, v := range c.elems {
		switch {
		case c.kind == scalar.Float32:
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v.Float())))
		case c.kind == scalar.Float64:
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.Float()))
		default:
			buf = appendInteger(buf, size, v.Uint())
		}
	}
	return buf
}

func appendInteger(buf []byte, size int, n uint64) []byte {
	switch size {
	case 1:
		return append(buf, byte(n))
	case 2:
		return binary.LittleEndian.AppendUint16(buf, uint16(n))
	case 4:
		return binary.LittleEndian.AppendUint32(buf, uint32(n))
	default:
		return binary.LittleEndian.AppendUint64(buf, n)
	}
}

// Digest returns the hex SHA-256 of the kind name and Bytes, separated from
// DomainContainer and from each other by a zero byte. Two containers have
// the same digest only if they have the same kind, length and bit patterns.
func (c Container) Digest() string {
	h := sha256.New()
	h.Write([]byte(DomainContainer))
	h.Write([]byte{0x00})
	h.Write([]byte(c.kind.String()))
	h.Write([]byte{0x00})
	h.Write(c.Bytes())
	return hex.EncodeToString(h.Sum(nil))
}
