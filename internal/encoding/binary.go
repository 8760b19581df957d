package encoding

import (
	"encoding/binary"
	"math"
)

// FromBytes32 turns []byte into uint32
func FromBytes32(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// ToBytes32 turns a uint32 into []byte len 4
func ToBytes32(in uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, in)
	return buf
}

// FromBytes64 turns []byte into uint64
func FromBytes64(data []byte) uint64 {
	return binary.BigEndian.Uint64(data)
}

// ToBytes64 turns a uint64 into []byte len 8
func ToBytes64(in uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, in)
	return buf
}

// FromBytesF64 turns []byte into a float64
func FromBytesF64(data []byte) float64 {
	return math.Float64frombits(FromBytes64(data))
}

// ToBytesF64 turns a float64 into []byte len 8
func ToBytesF64(in float64) []byte {
	return ToBytes64(math.Float64bits(in))
}
