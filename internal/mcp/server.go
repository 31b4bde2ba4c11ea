// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the compiled training dataset as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gerbilkit/distill/internal/storage"
	"github.com/gerbilkit/distill/pkg/models"
)

// defaultSearchLimit bounds search results when the client does not ask
// for a specific count.
const defaultSearchLimit = 10

// Server wraps the dataset reader and exposes it as MCP tools.
type Server struct {
	server *gomcp.Server
	reader storage.DatasetReader
}

// NewServer creates a new MCP server over the given dataset reader.
func NewServer(reader storage.DatasetReader, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{reader: reader}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "distill", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type datasetStatsInput struct{}

type categoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type datasetStatsOutput struct {
	Categories []categoryStat `json:"categories"`
	Total      int            `json:"total"`
}

type searchEntriesInput struct {
	Query    string `json:"query" jsonschema:"required,substring to match against entry instructions and outputs"`
	Category string `json:"category,omitempty" jsonschema:"restrict results to one identifier category (e.g. cookbook, security, doc)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results to return. Defaults to 10."`
}

type entrySummary struct {
	Source      string `json:"source"`
	Instruction string `json:"instruction"`
}

type searchEntriesOutput struct {
	Entries []entrySummary `json:"entries"`
	Count   int            `json:"count"`
}

type getEntryInput struct {
	Source string `json:"source" jsonschema:"required,the entry identifier (e.g. cookbook:r1:howto or doc:guide/intro.md:full)"`
}

type entryOutput struct {
	Source      string `json:"source"`
	Instruction string `json:"instruction"`
	Output      string `json:"output"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "dataset_stats",
		Description: "Get entry counts per identifier category for the compiled training dataset.",
	}, s.handleDatasetStats)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "search_entries",
		Description: "Search training entries by substring match over instructions and outputs, optionally filtered by category.",
	}, s.handleSearchEntries)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_entry",
		Description: "Get one training entry by its identifier, including the full output text.",
	}, s.handleGetEntry)
}

// --- Tool handlers ---

func (s *Server) handleDatasetStats(_ context.Context, _ *gomcp.CallToolRequest, _ datasetStatsInput) (*gomcp.CallToolResult, datasetStatsOutput, error) {
	entries, err := s.reader.ReadFlats()
	if err != nil {
		return errorResult(fmt.Sprintf("reading dataset: %s", err)), datasetStatsOutput{}, nil
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[categoryOf(e)]++
	}

	out := datasetStatsOutput{Total: len(entries)}
	for c, n := range counts {
		out.Categories = append(out.Categories, categoryStat{Category: c, Count: n})
	}
	sort.Slice(out.Categories, func(i, j int) bool {
		if out.Categories[i].Count != out.Categories[j].Count {
			return out.Categories[i].Count > out.Categories[j].Count
		}
		return out.Categories[i].Category < out.Categories[j].Category
	})

	return nil, out, nil
}

func (s *Server) handleSearchEntries(_ context.Context, _ *gomcp.CallToolRequest, input searchEntriesInput) (*gomcp.CallToolResult, searchEntriesOutput, error) {
	if input.Query == "" {
		return errorResult("query is required"), searchEntriesOutput{}, nil
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	entries, err := s.reader.ReadFlats()
	if err != nil {
		return errorResult(fmt.Sprintf("reading dataset: %s", err)), searchEntriesOutput{}, nil
	}

	query := strings.ToLower(input.Query)
	out := searchEntriesOutput{}
	for _, e := range entries {
		if input.Category != "" && categoryOf(e) != input.Category {
			continue
		}
		if !strings.Contains(strings.ToLower(e.Instruction), query) &&
			!strings.Contains(strings.ToLower(e.Output), query) {
			continue
		}
		out.Entries = append(out.Entries, entrySummary{
			Source:      e.Source,
			Instruction: e.Instruction,
		})
		if len(out.Entries) >= limit {
			break
		}
	}
	out.Count = len(out.Entries)

	return nil, out, nil
}

func (s *Server) handleGetEntry(_ context.Context, _ *gomcp.CallToolRequest, input getEntryInput) (*gomcp.CallToolResult, entryOutput, error) {
	if input.Source == "" {
		return errorResult("source is required"), entryOutput{}, nil
	}

	entries, err := s.reader.ReadFlats()
	if err != nil {
		return errorResult(fmt.Sprintf("reading dataset: %s", err)), entryOutput{}, nil
	}

	for _, e := range entries {
		if e.Source == input.Source {
			return nil, entryOutput{
				Source:      e.Source,
				Instruction: e.Instruction,
				Output:      e.Output,
			}, nil
		}
	}

	return errorResult(fmt.Sprintf("no entry with source %q", input.Source)), entryOutput{}, nil
}

// --- Helpers ---

func categoryOf(e models.FlatEntry) string {
	category, _, _ := strings.Cut(e.Source, ":")
	if category == "" {
		category = "unknown"
	}
	return category
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
