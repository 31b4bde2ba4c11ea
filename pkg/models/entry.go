package models

// Conversation turn roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ExtractedPair is the uniform intermediate produced by every source
// adapter: one question, its answer, and a provenance identifier such
// as "cookbook:r1:howto". Identifiers are unique per variant so that
// deduplication never collapses distinct variants of the same record.
type ExtractedPair struct {
	Question string
	Answer   string
	Source   string
}

// Turn is a single message in a conversation entry.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationEntry is a ChatML/ShareGPT style training record: an
// ordered turn sequence plus the source identifier used for dedup.
type ConversationEntry struct {
	Conversations []Turn `json:"conversations"`
	Source        string `json:"source"`
}

// FlatEntry is an Alpaca style training record. Input is usually empty;
// the question lives in Instruction and the answer in Output.
type FlatEntry struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
	Source      string `json:"source"`
}

// Section is a heading-delimited span of a markdown document.
type Section struct {
	Heading string
	Body    string
}
