package generatorimpl

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/orgball2608/story-fixtures/internal/domain"
)

type usernameStyle func(r *rand.Rand, first, last string) string

var usernameStyles = []usernameStyle{
	func(_ *rand.Rand, first, last string) string { return first + last },
	func(_ *rand.Rand, first, last string) string { return first + "_" + last },
	func(r *rand.Rand, first, _ string) string { return first + strconv.Itoa(intBetween(r, 1, 99)) },
	func(_ *rand.Rand, first, last string) string { return first + "." + truncate(last, 3) },
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (g *GeneratorImpl) generateUsers(count int) []domain.User {
	users := make([]domain.User, 0, count)
	seen := make(map[string]struct{}, count)

	for id := 1; id <= count; id++ {
		first := pick(g.rnd, firstNames)
		last := pick(g.rnd, lastNames)

		username := g.username(first, last)
		for {
			if _, taken := seen[username]; !taken {
				break
			}
			username += strconv.Itoa(intBetween(g.rnd, 1, 999))
		}
		seen[username] = struct{}{}

		users = append(users, domain.User{
			ID:             id,
			Username:       username,
			FullName:       first + " " + last,
			ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?img=%d", intBetween(g.rnd, 1, 70)),
			IsVerified:     chance(g.rnd, verifiedProbability),
		})
	}
	return users
}

func (g *GeneratorImpl) username(first, last string) string {
	style := pick(g.rnd, usernameStyles)
	return style(g.rnd, strings.ToLower(first), strings.ToLower(last))
}
