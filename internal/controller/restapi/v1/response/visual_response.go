package response

type VisualExplanation struct {
	ID          string `json:"id"`
	Image       string `json:"image"`
	Explanation string `json:"explanation"`
	Topic       string `json:"topic"`
	Subject     string `json:"subject"`
}

type Artifact struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Subject     string `json:"subject"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Explanation string `json:"explanation"`
	Provider    string `json:"provider"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type Error struct {
	Error string `json:"error"`
}
