package pipeline

import (
	"strings"

	"userpipe/pkg/domain"
	"userpipe/pkg/serrors"
)

// MaxSupportedAge is the fixed upper bound on ages the pipeline supports.
// Ages above it fail validation with an AgeOutOfRange error.
const MaxSupportedAge uint8 = 120

// ValidateUser checks a parsed user against the configured rules and returns
// the user with its name normalized by trimming. Checks run in a fixed
// order and the first violated rule decides the returned error:
// empty name, age below minimum, age above MaxSupportedAge, invalid email.
//
// The email embedded in an InvalidEmail error is masked so the full address
// never leaks into logs or output.
func ValidateUser(user domain.User, opts Options) (domain.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	if user.Name == "" {
		return domain.User{}, serrors.With(serrors.ErrEmptyName, "name must not be empty")
	}

	if user.Age < opts.MinAge {
		return domain.User{}, serrors.With(serrors.ErrInvalidAge,
			"age %d is below configured minimum %d", user.Age, opts.MinAge)
	}

	if user.Age > MaxSupportedAge {
		return domain.User{}, serrors.With(serrors.ErrAgeOutOfRange,
			"age %d exceeds supported upper bound", user.Age)
	}

	if !IsValidEmail(user.Email, opts.StrictEmail) {
		return domain.User{}, serrors.With(serrors.ErrInvalidEmail,
			"invalid email address: %s", MaskEmail(user.Email))
	}

	return user, nil
}
