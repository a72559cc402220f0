package pipeline_test

import (
	"testing"

	"userpipe/internal/pipeline"
	"userpipe/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestFormatUser(t *testing.T) {
	enriched := domain.EnrichedUser{
		User:     domain.User{Name: "Alice", Age: 30, Email: "alice@example.com"},
		AgeGroup: domain.NewAgeGroup("30s"),
		Username: "alice",
	}
	require.Equal(t, "Alice (30, 30s) -> username=alice", pipeline.FormatUser(enriched))
}

func TestMaskEmail(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple address", in: "user@example.com", want: "u***@example.com"},
		{name: "no at sign", in: "invalid", want: "***"},
		{name: "empty string", in: "", want: "***"},
		{name: "empty local part", in: "@example.com", want: "***"},
		{name: "empty domain part", in: "user@", want: "***"},
		{name: "two at signs", in: "a@b@example.com", want: "***"},
		{name: "surrounding whitespace trimmed", in: "  user@example.com  ", want: "u***@example.com"},
		{name: "multibyte first character kept whole", in: "üser@example.com", want: "ü***@example.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, pipeline.MaskEmail(tc.in))
		})
	}
}
