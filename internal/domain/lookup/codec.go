package lookup

import (
	"fmt"
	"strconv"
	"strings"

	"sakatsuku04/internal/domain"
)

// DefaultWidth is the hex width of most small enumerations on disk.
const DefaultWidth = 2

// Encode renders code as uppercase hexadecimal, zero padded on the left to at
// least width digits. Codes that need more digits are kept whole. Negative
// codes keep their sign in front of the padded magnitude.
func Encode(code, width int) string {
	mag := uint64(code)
	if code < 0 {
		// Two's complement negation stays exact for the most negative int.
		mag = -mag
	}
	s := strings.ToUpper(strconv.FormatUint(mag, 16))
	if pad := width - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	if code < 0 {
		s = "-" + s
	}
	return s
}

// Decode parses a hexadecimal key produced by Encode. Upper and lower case
// digits are accepted; anything else fails with domain.ErrInvalidEncoding.
func Decode(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("decode %q: %w", s, domain.ErrInvalidEncoding)
	}
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || digits[0] == '+' {
		return 0, fmt.Errorf("decode %q: %w", s, domain.ErrInvalidEncoding)
	}
	v, err := strconv.ParseInt(s, 16, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", s, domain.ErrInvalidEncoding)
	}
	return int(v), nil
}
