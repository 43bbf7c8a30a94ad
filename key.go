package fieldmap

import (
	"encoding"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Key converts map keys to and from the string keys of object nodes.
type Key[K comparable] interface {
	FormatKey(k K) (string, error)
	ParseKey(s string) (K, error)
}

type stringKey[K ~string] struct{}

// StringKey is the Key for string types.
func StringKey[K ~string]() Key[K] {
	return stringKey[K]{}
}

func (stringKey[K]) FormatKey(k K) (string, error) {
	return string(k), nil
}

func (stringKey[K]) ParseKey(s string) (K, error) {
	return K(s), nil
}

type intKey[K constraints.Integer] struct{}

// IntKey is the Key for integer types, written in base 10. Parsed keys are
// converted to K without a range check, as numeric decoding is.
func IntKey[K constraints.Integer]() Key[K] {
	return intKey[K]{}
}

func (intKey[K]) FormatKey(k K) (string, error) {
	var zero K
	if zero-1 < zero {
		return strconv.FormatInt(int64(k), 10), nil
	}
	return strconv.FormatUint(uint64(k), 10), nil
}

func (intKey[K]) ParseKey(s string) (K, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return K(i), nil
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Newf("%q is not an integer key", s)
	}
	return K(u), nil
}

type textKey[K interface {
	comparable
	encoding.TextMarshaler
}, P interface {
	*K
	encoding.TextUnmarshaler
}] struct{}

// TextKey is the Key for types implementing encoding.TextMarshaler, with
// *K implementing encoding.TextUnmarshaler.
func TextKey[K interface {
	comparable
	encoding.TextMarshaler
}, P interface {
	*K
	encoding.TextUnmarshaler
}]() Key[K] {
	return textKey[K, P]{}
}

func (textKey[K, P]) FormatKey(k K) (string, error) {
	d, err := k.MarshalText()
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func (textKey[K, P]) ParseKey(s string) (K, error) {
	var k K
	if err := P(&k).UnmarshalText([]byte(s)); err != nil {
		return k, err
	}
	return k, nil
}
