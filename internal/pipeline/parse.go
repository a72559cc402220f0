package pipeline

import (
	"strconv"
	"strings"

	"userpipe/pkg/domain"
	"userpipe/pkg/serrors"
)

// ParseLine turns one raw comma-separated line into a User.
//
// Exactly three fields are expected, in order: name, age, email. Each field
// is trimmed of surrounding whitespace. Embedded commas are not supported;
// there is no quoting or escaping. The age must be a non-negative integer
// fitting 8 bits, so a numeral outside 0-255 already fails here rather than
// at validation.
func ParseLine(line string) (domain.User, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if fields[0] == "" {
		return domain.User{}, parseError("missing name field")
	}
	if len(fields) < 2 {
		return domain.User{}, parseError("missing age field")
	}
	if len(fields) < 3 || fields[2] == "" {
		return domain.User{}, parseError("missing email field")
	}
	if len(fields) > 3 {
		return domain.User{}, parseError("too many fields")
	}

	age, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return domain.User{}, parseError("invalid age `%s`", fields[1])
	}

	return domain.User{
		Name:  fields[0],
		Age:   uint8(age),
		Email: fields[2],
	}, nil
}

// parseError builds a Parse-kind error carrying the documented message shape.
func parseError(reasonFmt string, args ...any) error {
	return serrors.With(serrors.ErrParse, "failed to parse line: "+reasonFmt, args...)
}
