package generatorimpl

import (
	"fmt"
	"time"

	"github.com/orgball2608/story-fixtures/internal/domain"
)

func (g *GeneratorImpl) generateStories(now time.Time, count, userCount int) []domain.Story {
	stories := make([]domain.Story, 0, count)

	for id := 1; id <= count; id++ {
		stories = append(stories, domain.Story{
			ID:        id,
			UserID:    intBetween(g.rnd, 1, userCount),
			MediaType: domain.MediaTypeImage,
			MediaURL:  fmt.Sprintf("https://picsum.photos/400/700?random=%d", id),
			Caption:   pick(g.rnd, captions),
			Timestamp: domain.NewTimestamp(recentTime(g.rnd, now, storyLookback)),
			Duration:  intBetween(g.rnd, 5, 15),
			Views:     intBetween(g.rnd, 50, 2500),
			HasViewed: chance(g.rnd, hasViewedProbability),
		})
	}
	return stories
}

func (g *GeneratorImpl) generateStoryViews(now time.Time, stories []domain.Story, userCount int) []domain.StoryView {
	views := make([]domain.StoryView, 0)
	nextID := 1

	for _, story := range stories {
		want := intBetween(g.rnd, 0, maxViewsPerStory)
		for _, userID := range pickDistinctUsers(g.rnd, userCount, story.UserID, want) {
			views = append(views, domain.StoryView{
				ID:        nextID,
				StoryID:   story.ID,
				UserID:    userID,
				Timestamp: domain.NewTimestamp(recentTime(g.rnd, now, interactionLookback)),
			})
			nextID++
		}
	}
	return views
}

func (g *GeneratorImpl) generateStoryReplies(now time.Time, stories []domain.Story, userCount int) []domain.StoryReply {
	replies := make([]domain.StoryReply, 0)
	nextID := 1

	for _, story := range stories {
		if !chance(g.rnd, replyProbability) {
			continue
		}
		want := intBetween(g.rnd, minRepliesPerStory, maxRepliesPerStory)
		for _, userID := range pickDistinctUsers(g.rnd, userCount, story.UserID, want) {
			replies = append(replies, domain.StoryReply{
				ID:        nextID,
				StoryID:   story.ID,
				UserID:    userID,
				Message:   pick(g.rnd, replyMessages),
				Timestamp: domain.NewTimestamp(recentTime(g.rnd, now, interactionLookback)),
			})
			nextID++
		}
	}
	return replies
}
