package dto

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatDebug mirrors what the orchestrator decided, returned alongside the
// generated content for UI inspection.
type ChatDebug struct {
	Intent       string `json:"intent"`
	RouterAgent  string `json:"router_agent,omitempty"`
	SessionId    string `json:"session_id,omitempty"`
	SessionError string `json:"session_error,omitempty"`
	Action       string `json:"action,omitempty"`
	Candidates   int    `json:"candidates,omitempty"`
	Sources      int    `json:"sources,omitempty"`
}

type ChatResponse struct {
	Content string     `json:"content"`
	Debug   *ChatDebug `json:"debug,omitempty"`
}
