package pipeline_test

import (
	"fmt"
	"math/rand"
	"testing"

	"userpipe/internal/pipeline"
	"userpipe/pkg/domain"
	"userpipe/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		want      domain.User
		errReason string // empty means the parse should succeed
	}{
		{
			name: "simple record",
			in:   "Alice,30,alice@example.com",
			want: domain.User{Name: "Alice", Age: 30, Email: "alice@example.com"},
		},
		{
			name: "fields are trimmed",
			in:   " Bob , 45 , bob@example.com ",
			want: domain.User{Name: "Bob", Age: 45, Email: "bob@example.com"},
		},
		{
			name: "age 255 still fits eight bits",
			in:   "Carol,255,carol@example.com",
			want: domain.User{Name: "Carol", Age: 255, Email: "carol@example.com"},
		},
		{
			name:      "empty name",
			in:        ",30,alice@example.com",
			errReason: "missing name field",
		},
		{
			name:      "whitespace-only name",
			in:        "   ,30,alice@example.com",
			errReason: "missing name field",
		},
		{
			name:      "missing age field",
			in:        "Alice",
			errReason: "missing age field",
		},
		{
			name:      "missing email field",
			in:        "Alice,30",
			errReason: "missing email field",
		},
		{
			name:      "empty email field",
			in:        "Alice,30,   ",
			errReason: "missing email field",
		},
		{
			name:      "too many fields",
			in:        "Alice,30,alice@example.com,extra",
			errReason: "too many fields",
		},
		{
			name:      "non-numeric age",
			in:        "Alice,abc,alice@example.com",
			errReason: "invalid age `abc`",
		},
		{
			name:      "negative age",
			in:        "Alice,-1,alice@example.com",
			errReason: "invalid age `-1`",
		},
		{
			name:      "age beyond eight bits fails at parse",
			in:        "Alice,256,alice@example.com",
			errReason: "invalid age `256`",
		},
		{
			name:      "empty age string",
			in:        "Alice,,alice@example.com",
			errReason: "invalid age ``",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pipeline.ParseLine(tc.in)
			if tc.errReason != "" {
				require.ErrorIs(t, err, serrors.ErrParse)
				require.EqualError(t, err, "failed to parse line: "+tc.errReason)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestParseLineRoundTrip feeds synthesized valid records through the parser
// and checks all fields survive unchanged.
func TestParseLineRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	const (
		letters   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
		lowercase = "abcdefghijklmnopqrstuvwxyz"
		alnum     = "abcdefghijklmnopqrstuvwxyz0123456789"
	)
	randString := func(alphabet string, minLen, maxLen int) string {
		n := minLen + rng.Intn(maxLen-minLen+1)
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}

		return string(b)
	}

	for i := 0; i < 500; i++ {
		name := randString(letters, 1, 16)
		age := uint8(rng.Intn(91))
		email := fmt.Sprintf("%s@%s.com", randString(alnum, 1, 8), randString(lowercase, 2, 10))

		line := fmt.Sprintf("%s,%d,%s", name, age, email)
		user, err := pipeline.ParseLine(line)
		require.NoError(t, err, "line %q", line)
		require.Equal(t, domain.User{Name: name, Age: age, Email: email}, user)
	}
}
