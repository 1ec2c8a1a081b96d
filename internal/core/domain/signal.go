package domain

// ChannelType tags the origin channel of a scraped video.
type ChannelType string

const (
	// ChannelInspiration is a high-performing channel in another
	// language/market whose coverage signals proven demand.
	ChannelInspiration ChannelType = "inspiration"
	// ChannelCompetition is a channel competing for the same audience.
	ChannelCompetition ChannelType = "competition"
	// ChannelBeliefSeeder is a channel known to promote false health
	// narratives.
	ChannelBeliefSeeder ChannelType = "belief_seeder"
	// ChannelOther is any channel outside the tracked groups.
	ChannelOther ChannelType = "other"
)

// Video is a read-only scraped video signal.
type Video struct {
	Title           string      `json:"title"`
	ChannelName     string      `json:"channel_name"`
	ChannelType     ChannelType `json:"channel_type"`
	ChannelLanguage string      `json:"channel_language"`
	Views           int         `json:"views"`
	URL             string      `json:"url,omitempty"`
}

// Valid reports whether the video record is scorable.
func (v Video) Valid() bool {
	return v.Title != "" && v.Views >= 0
}

// Question is a read-only audience question, scraped from comments or
// dedicated top-question extracts.
type Question struct {
	Text  string `json:"text"`
	Likes int    `json:"likes"`
}

// Valid reports whether the question record is scorable.
func (q Question) Valid() bool {
	return q.Text != "" && q.Likes >= 0
}
