package store

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Message is one turn of the chatbot conversation as exchanged with
// the frontend. Content may carry sanitized HTML (navigation links);
// Timestamp is a display-formatted time string, not an instant.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}
