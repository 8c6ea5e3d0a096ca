// Package line implements the messaging platform adapter: the webhook event
// model, signature verification for inbound deliveries, and the REST client
// used to send replies, push messages, and fetch member profiles.
package line

// Webhook event types handled by the bot. Any other type is ignored.
const (
	EventTypeMessage      = "message"
	EventTypeJoin         = "join"
	EventTypeFollow       = "follow"
	EventTypeMemberJoined = "memberJoined"
)

// Message types within a message event.
const (
	MessageTypeText = "text"
)

// Source types identifying the conversation scope of an event.
const (
	SourceTypeUser  = "user"
	SourceTypeGroup = "group"
	SourceTypeRoom  = "room"
)

// WebhookRequest is the body of one inbound webhook delivery: a batch of
// heterogeneous events.
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event is a single platform event. ReplyToken is only valid within the
// originating event's reply window.
type Event struct {
	Type       string        `json:"type"`
	Timestamp  int64         `json:"timestamp"`
	ReplyToken string        `json:"replyToken,omitempty"`
	Source     Source        `json:"source"`
	Message    *EventMessage `json:"message,omitempty"`
	Joined     *Joined       `json:"joined,omitempty"`
}

// Source identifies where an event originated: a user, group, or room.
type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

// ConversationID returns the identifier of the conversation scope the event
// belongs to: the group or room ID for shared chats, the user ID otherwise.
func (s Source) ConversationID() string {
	switch s.Type {
	case SourceTypeGroup:
		return s.GroupID
	case SourceTypeRoom:
		return s.RoomID
	default:
		return s.UserID
	}
}

// IsShared reports whether the source is a multi-member conversation.
func (s Source) IsShared() bool {
	return s.Type == SourceTypeGroup || s.Type == SourceTypeRoom
}

// EventMessage is the message payload of a message event.
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Joined lists the members that entered a group in a memberJoined event.
type Joined struct {
	Members []Source `json:"members"`
}

// Profile is a member's public profile.
type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl,omitempty"`
}
