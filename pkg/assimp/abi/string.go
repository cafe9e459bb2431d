package abi

import (
	"errors"
	"fmt"
)

// ErrStringTooLong is returned by TryNewString for input that does not fit
// into the fixed 1024-byte buffer (one byte is reserved for the terminator).
var ErrStringTooLong = errors.New("string exceeds fixed capacity")

// String is the length-prefixed, fixed-capacity string (aiString).
type String struct {
	Length uintptr
	Data   [MaxStringLen]byte
}

// NewString converts s to the fixed-capacity representation.
// It panics if len(s) >= MaxStringLen.
func NewString(s string) String {
	str, err := TryNewString(s)
	if err != nil {
		panic(fmt.Sprintf("abi: %v (%d bytes, capacity %d)", err, len(s), MaxStringLen-1))
	}
	return str
}

// TryNewString is like NewString but reports an oversized input as
// ErrStringTooLong.
func TryNewString(s string) (String, error) {
	var str String
	if len(s) >= MaxStringLen {
		return str, ErrStringTooLong
	}
	str.Length = uintptr(len(s))
	copy(str.Data[:], s)
	return str, nil
}

// String returns the Go string held by s.
// It panics if the length prefix is corrupt.
func (s *String) String() string {
	if s.Length >= MaxStringLen {
		panic(fmt.Sprintf("abi: corrupt string length %d", s.Length))
	}
	return string(s.Data[:s.Length])
}

// Set overwrites s in place, keeping the terminator intact.
// It panics if len(v) >= MaxStringLen.
func (s *String) Set(v string) {
	if len(v) >= MaxStringLen {
		panic(fmt.Sprintf("abi: %v (%d bytes, capacity %d)", ErrStringTooLong, len(v), MaxStringLen-1))
	}
	n := copy(s.Data[:], v)
	clear(s.Data[n:])
	s.Length = uintptr(n)
}

// Equal reports whether s and other hold the same text.
func (s *String) Equal(other *String) bool {
	return s.String() == other.String()
}
