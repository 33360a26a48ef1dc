package models

// Comment is a user comment on a video. CreatedAt is a client-generated
// ISO-8601 timestamp assigned at post time; AdminReply is attached
// out-of-band by a separate administrative surface and only rendered here.
type Comment struct {
	ID         string `json:"id,omitempty"`
	VideoID    string `json:"videoId"`
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	Text       string `json:"text"`
	CreatedAt  string `json:"createdAt"`
	AdminReply string `json:"adminReply,omitempty"`
}
