package generator

import (
	"context"
	"strconv"
	"strings"

	"github.com/orgball2608/story-fixtures/internal/domain"
)

const (
	DefaultUsers   = 20
	DefaultStories = 50
)

type Counts struct {
	Users   int
	Stories int
}

func DefaultCounts() Counts {
	return Counts{Users: DefaultUsers, Stories: DefaultStories}
}

type Client interface {
	Generate(ctx context.Context, counts Counts) (*domain.Dataset, error)
}

// ParseCounts reads the optional positional [userCount] [storyCount]
// arguments. Absent, non-numeric or non-positive values silently take the
// fallback.
func ParseCounts(args []string, fallback Counts) Counts {
	counts := fallback
	if len(args) > 0 {
		if n, ok := parsePositive(args[0]); ok {
			counts.Users = n
		}
	}
	if len(args) > 1 {
		if n, ok := parsePositive(args[1]); ok {
			counts.Stories = n
		}
	}
	return counts
}

func parsePositive(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
