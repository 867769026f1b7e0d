package domain

const MediaTypeImage = "image"

type Story struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	MediaType string    `json:"mediaType"`
	MediaURL  string    `json:"mediaUrl"`
	Caption   string    `json:"caption"`
	Timestamp Timestamp `json:"timestamp"`
	Duration  int       `json:"duration"` // seconds
	Views     int       `json:"views"`
	HasViewed bool      `json:"hasViewed"`
}

type StoryView struct {
	ID        int       `json:"id"`
	StoryID   int       `json:"storyId"`
	UserID    int       `json:"userId"`
	Timestamp Timestamp `json:"timestamp"`
}

type StoryReply struct {
	ID        int       `json:"id"`
	StoryID   int       `json:"storyId"`
	UserID    int       `json:"userId"`
	Message   string    `json:"message"`
	Timestamp Timestamp `json:"timestamp"`
}
