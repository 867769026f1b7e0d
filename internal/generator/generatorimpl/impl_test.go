package generatorimpl

import (
	"context"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/story-fixtures/internal/domain"
	"github.com/orgball2608/story-fixtures/internal/generator"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/orgball2608/story-fixtures/pkg/errors"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *GeneratorImpl {
	log := logger.New(logger.Opts{Out: io.Discard})
	return NewWithSource(rand.New(rand.NewPCG(seed, seed+1)), func() time.Time { return fixedNow }, log)
}

func generate(t *testing.T, g *GeneratorImpl, users, stories int) *domain.Dataset {
	t.Helper()
	ds, err := g.Generate(context.Background(), generator.Counts{Users: users, Stories: stories})
	require.NoError(t, err)
	return ds
}

func TestGenerateSmallScenario(t *testing.T) {
	ds := generate(t, newTestGenerator(1), 3, 5)

	require.Len(t, ds.Users, 3)
	require.Len(t, ds.Stories, 5)
	for i, story := range ds.Stories {
		require.Equal(t, i+1, story.ID)
		require.GreaterOrEqual(t, story.UserID, 1)
		require.LessOrEqual(t, story.UserID, 3)
		require.Equal(t, domain.MediaTypeImage, story.MediaType)
	}
	for i, user := range ds.Users {
		require.Equal(t, i+1, user.ID)
	}
}

func TestUsernamesAreUnique(t *testing.T) {
	// 40 first names leave plenty of room for collisions at this size.
	ds := generate(t, newTestGenerator(2), 2000, 1)

	seen := make(map[string]bool, len(ds.Users))
	for _, user := range ds.Users {
		require.False(t, seen[user.Username], "duplicate username %q", user.Username)
		seen[user.Username] = true
		require.Equal(t, strings.ToLower(user.Username), user.Username)
		require.Contains(t, user.ProfilePicture, "https://i.pravatar.cc/150?img=")
		require.Len(t, strings.Fields(user.FullName), 2)
	}
}

func TestUsernameStyles(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	require.Equal(t, "janedoe", usernameStyles[0](r, "jane", "doe"))
	require.Equal(t, "jane_doe", usernameStyles[1](r, "jane", "doe"))
	require.Regexp(t, `^jane[1-9][0-9]?$`, usernameStyles[2](r, "jane", "doe"))
	require.Equal(t, "jane.rob", usernameStyles[3](r, "jane", "robinson"))
	require.Equal(t, "jane.lee", usernameStyles[3](r, "jane", "lee"))
}

func TestViewersAndRepliersAreDistinctAndNotAuthor(t *testing.T) {
	ds := generate(t, newTestGenerator(5), 30, 1000)

	authors := make(map[int]int, len(ds.Stories))
	for _, story := range ds.Stories {
		authors[story.ID] = story.UserID
	}

	viewers := make(map[int]map[int]bool)
	for i, view := range ds.StoryViews {
		require.Equal(t, i+1, view.ID)
		require.NotEqual(t, authors[view.StoryID], view.UserID)
		if viewers[view.StoryID] == nil {
			viewers[view.StoryID] = make(map[int]bool)
		}
		require.False(t, viewers[view.StoryID][view.UserID], "story %d viewed twice by %d", view.StoryID, view.UserID)
		viewers[view.StoryID][view.UserID] = true
	}
	for storyID, set := range viewers {
		require.LessOrEqual(t, len(set), 5, "story %d", storyID)
	}

	repliers := make(map[int]map[int]bool)
	for i, reply := range ds.StoryReplies {
		require.Equal(t, i+1, reply.ID)
		require.NotEqual(t, authors[reply.StoryID], reply.UserID)
		require.Contains(t, replyMessages, reply.Message)
		if repliers[reply.StoryID] == nil {
			repliers[reply.StoryID] = make(map[int]bool)
		}
		require.False(t, repliers[reply.StoryID][reply.UserID])
		repliers[reply.StoryID][reply.UserID] = true
	}
	for storyID, set := range repliers {
		require.GreaterOrEqual(t, len(set), 1, "story %d", storyID)
		require.LessOrEqual(t, len(set), 3, "story %d", storyID)
	}
}

func TestReplyFrequency(t *testing.T) {
	ds := generate(t, newTestGenerator(8), 50, 20000)

	replied := make(map[int]bool)
	for _, reply := range ds.StoryReplies {
		replied[reply.StoryID] = true
	}
	ratio := float64(len(replied)) / float64(len(ds.Stories))
	require.InDelta(t, 0.4, ratio, 0.03)
}

func TestStoryFieldRanges(t *testing.T) {
	ds := generate(t, newTestGenerator(13), 10, 500)

	for _, story := range ds.Stories {
		require.GreaterOrEqual(t, story.Duration, 5)
		require.LessOrEqual(t, story.Duration, 15)
		require.GreaterOrEqual(t, story.Views, 50)
		require.LessOrEqual(t, story.Views, 2500)
		require.Contains(t, captions, story.Caption)
		require.Equal(t, "https://picsum.photos/400/700?random="+strconv.Itoa(story.ID), story.MediaURL)
		require.False(t, story.Timestamp.After(fixedNow))
		require.False(t, story.Timestamp.Before(fixedNow.Add(-3*day)))
	}
	for _, view := range ds.StoryViews {
		require.False(t, view.Timestamp.After(fixedNow))
		require.False(t, view.Timestamp.Before(fixedNow.Add(-2*day)))
	}
	for _, reply := range ds.StoryReplies {
		require.False(t, reply.Timestamp.Before(fixedNow.Add(-2*day)))
	}
}

func TestSingleUserTerminatesWithoutInteractions(t *testing.T) {
	ds := generate(t, newTestGenerator(21), 1, 40)

	require.Len(t, ds.Users, 1)
	require.Len(t, ds.Stories, 40)
	require.Empty(t, ds.StoryViews)
	require.Empty(t, ds.StoryReplies)
}

func TestSameCountsSameShape(t *testing.T) {
	a := generate(t, newTestGenerator(34), 12, 30)
	b := generate(t, newTestGenerator(55), 12, 30)

	require.Len(t, a.Users, len(b.Users))
	require.Len(t, a.Stories, len(b.Stories))
	require.NotEqual(t, a, b)
}

func TestSeedIsReproducible(t *testing.T) {
	a := generate(t, newTestGenerator(89), 12, 30)
	b := generate(t, newTestGenerator(89), 12, 30)
	require.Equal(t, a, b)
}

func TestNewHonorsConfiguredSeed(t *testing.T) {
	cfg := &config.Config{}
	cfg.Generator.Seed = 42
	log := logger.New(logger.Opts{Out: io.Discard})

	a, err := New(Opts{Logger: log, Config: cfg}).Generate(context.Background(), generator.Counts{Users: 5, Stories: 5})
	require.NoError(t, err)
	b, err := New(Opts{Logger: log, Config: cfg}).Generate(context.Background(), generator.Counts{Users: 5, Stories: 5})
	require.NoError(t, err)
	require.Equal(t, a.Users, b.Users)
}

func TestGenerateRejectsInvalidCounts(t *testing.T) {
	g := newTestGenerator(1)

	_, err := g.Generate(context.Background(), generator.Counts{Users: 0, Stories: 5})
	require.True(t, errors.IsInvalidInput(err))

	_, err = g.Generate(context.Background(), generator.Counts{Users: 3, Stories: -1})
	require.True(t, errors.IsInvalidInput(err))
}

func TestGenerateHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGenerator(1).Generate(ctx, generator.Counts{Users: 3, Stories: 3})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPickDistinctUsers(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))

	got := pickDistinctUsers(r, 4, 2, 10)
	require.ElementsMatch(t, []int{1, 3, 4}, got)

	got = pickDistinctUsers(r, 100, 50, 5)
	require.Len(t, got, 5)
	require.NotContains(t, got, 50)

	require.Empty(t, pickDistinctUsers(r, 1, 1, 3))
	require.Empty(t, pickDistinctUsers(r, 10, 1, 0))

	got = pickDistinctUsers(r, 5, 5, 4)
	require.ElementsMatch(t, []int{1, 2, 3, 4}, got)

	got = pickDistinctUsers(r, 5, 1, 4)
	require.ElementsMatch(t, []int{2, 3, 4, 5}, got)
}

func TestPickDistinctUsersLargePool(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 3))

	for author := 1; author <= 200; author++ {
		got := pickDistinctUsers(r, 1_000_000, author*5000, maxViewsPerStory)
		require.Len(t, got, maxViewsPerStory)

		seen := make(map[int]struct{}, len(got))
		for _, id := range got {
			require.NotEqual(t, author*5000, id)
			require.GreaterOrEqual(t, id, 1)
			require.LessOrEqual(t, id, 1_000_000)
			_, dup := seen[id]
			require.False(t, dup, "user %d drawn twice", id)
			seen[id] = struct{}{}
		}
	}
}

func TestGenerateScalesLinearly(t *testing.T) {
	if testing.Short() {
		t.Skip("large generation")
	}

	started := time.Now()
	ds := generate(t, newTestGenerator(9), 20_000, 20_000)
	require.Len(t, ds.Stories, 20_000)
	require.Less(t, time.Since(started), 20*time.Second)
}

func BenchmarkGenerate(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 40_000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			g := newTestGenerator(5)
			for i := 0; i < b.N; i++ {
				if _, err := g.Generate(context.Background(), generator.Counts{Users: n, Stories: n}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
