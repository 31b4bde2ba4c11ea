package core

import "github.com/gerbilkit/distill/pkg/models"

// NewConversationEntry wraps an extracted pair in the multi-turn
// ChatML/ShareGPT shape, prepending the system persona turn.
func NewConversationEntry(persona string, pair models.ExtractedPair) models.ConversationEntry {
	return models.ConversationEntry{
		Conversations: []models.Turn{
			{Role: models.RoleSystem, Content: persona},
			{Role: models.RoleUser, Content: pair.Question},
			{Role: models.RoleAssistant, Content: pair.Answer},
		},
		Source: pair.Source,
	}
}

// NewFlatEntry wraps the same pair in the flat Alpaca shape. The input
// field is always empty; the question carries the full context.
func NewFlatEntry(pair models.ExtractedPair) models.FlatEntry {
	return models.FlatEntry{
		Instruction: pair.Question,
		Input:       "",
		Output:      pair.Answer,
		Source:      pair.Source,
	}
}
