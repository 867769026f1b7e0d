package domain

// Dataset is the whole fixture document. Field order is the key order of
// the written JSON.
type Dataset struct {
	Users        []User       `json:"users"`
	Stories      []Story      `json:"stories"`
	StoryViews   []StoryView  `json:"storyViews"`
	StoryReplies []StoryReply `json:"storyReplies"`
}

type Summary struct {
	Users        int
	Stories      int
	StoryViews   int
	StoryReplies int
}

func (d *Dataset) Summary() Summary {
	return Summary{
		Users:        len(d.Users),
		Stories:      len(d.Stories),
		StoryViews:   len(d.StoryViews),
		StoryReplies: len(d.StoryReplies),
	}
}
