package domain

// ChatReply is the assistant answer returned for a chat message.
type ChatReply struct {
	Reply  string
	Source string
}
