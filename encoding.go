package bignum

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/calebcase/bignum/magnitude"
)

// decodeHex decodes bare hex digits, padding odd length input on the left.
func decodeHex(digits string) (mag []byte, err error) {
	for i := 0; i < len(digits); i++ {
		c := digits[i]

		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return nil, FormatError.New("invalid hex character %q at offset %d", c, i)
		}
	}

	if len(digits)%2 == 1 {
		digits = "0" + digits
	}

	mag, err = hex.DecodeString(digits)
	if err != nil {
		return nil, FormatError.Wrap(err)
	}

	return mag, nil
}

// Hex returns the canonical magnitude as lower case hex, two digits per byte.
// Zero is "0". The sign is not rendered.
func (x *Int) Hex() string {
	mag := magnitude.Trim(x.mag)
	if len(mag) == 0 {
		return "0"
	}

	return hex.EncodeToString(mag)
}

// String returns Hex prefixed with "-" when x is negative.
func (x *Int) String() string {
	if x.neg {
		return "-" + x.Hex()
	}

	return x.Hex()
}

// UTF returns the magnitude bytes as text. It fails with FormatError if x is
// negative or the bytes are not valid UTF-8.
func (x *Int) UTF() (s string, err error) {
	if x.neg {
		return "", FormatError.New("negative value has no text form")
	}

	if !utf8.Valid(x.mag) {
		return "", FormatError.New("magnitude is not valid utf-8")
	}

	return string(x.mag), nil
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) (err error) {
	v, err := FromHex(string(text))
	if err != nil {
		return err
	}

	*x = *v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x *Int) MarshalBinary() (data []byte, err error) {
	data = magnitude.Lsh(magnitude.Trim(x.mag), 1)
	if x.neg {
		data[len(data)-1] |= 1
	}

	data = magnitude.Trim(data)

	// Note: zero is encoded as an actual zero byte rather than an empty
	// byte array.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return FormatError.New("empty binary integer")
	}

	mag := magnitude.Clone(data)

	sign, err := magnitude.RightShiftInPlace(mag, 1)
	if err != nil {
		return err
	}

	*x = *newInt(magnitude.Trim(mag), sign == 1)

	return nil
}
