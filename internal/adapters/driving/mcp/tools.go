package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
)

// ListKeysInput is the input schema for the list_keys tool.
type ListKeysInput struct {
	MaxDepth   *int `json:"max_depth,omitempty" jsonschema:"only include keys whose depth is at most this value"`
	FixedDepth *int `json:"fixed_depth,omitempty" jsonschema:"only include keys whose depth is exactly this value"`
}

// ListKeysOutput is the output schema for the list_keys tool.
type ListKeysOutput struct {
	Keys  []string `json:"keys"`
	Count int      `json:"count"`
}

// GetValueInput is the input schema for the get_value tool.
type GetValueInput struct {
	Key string `json:"key" jsonschema:"the path key to resolve, e.g. 'a.b[2].c'"`
}

// GetValueOutput is the output schema for the get_value tool.
type GetValueOutput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FindKeysInput is the input schema for the find_keys tool.
type FindKeysInput struct {
	Substring string `json:"substring" jsonschema:"the substring to match anywhere in the key text"`
}

// SubsearchInput is the input schema for the subsearch_keys tool.
type SubsearchInput struct {
	Prefix string `json:"prefix" jsonschema:"the path key to re-root on, e.g. 'train'"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_keys",
		Description: "List the flattened path keys of the document",
	}, s.handleListKeys)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_value",
		Description: "Resolve a path key to its value",
	}, s.handleGetValue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_keys",
		Description: "List path keys containing a substring",
	}, s.handleFindKeys)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "subsearch_keys",
		Description: "List path keys below a prefix, relative to it",
	}, s.handleSubsearch)
}

// handleListKeys handles the list_keys tool invocation.
func (s *Server) handleListKeys(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListKeysInput,
) (*mcp.CallToolResult, ListKeysOutput, error) {
	view := s.ports.Search
	if input.MaxDepth != nil {
		view = view.MaxDepth(*input.MaxDepth)
	}
	if input.FixedDepth != nil {
		view = view.FixedDepth(*input.FixedDepth)
	}
	keys := view.FlatKeys()
	return nil, ListKeysOutput{Keys: keys, Count: len(keys)}, nil
}

// handleGetValue handles the get_value tool invocation.
func (s *Server) handleGetValue(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetValueInput,
) (*mcp.CallToolResult, GetValueOutput, error) {
	v, err := s.ports.Search.Get(input.Key)
	if err != nil {
		return nil, GetValueOutput{}, err
	}
	return nil, GetValueOutput{Key: input.Key, Value: domain.Format(v)}, nil
}

// handleFindKeys handles the find_keys tool invocation.
func (s *Server) handleFindKeys(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FindKeysInput,
) (*mcp.CallToolResult, ListKeysOutput, error) {
	keys := s.ports.Search.Find(input.Substring).FlatKeys()
	return nil, ListKeysOutput{Keys: keys, Count: len(keys)}, nil
}

// handleSubsearch handles the subsearch_keys tool invocation.
func (s *Server) handleSubsearch(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SubsearchInput,
) (*mcp.CallToolResult, ListKeysOutput, error) {
	sub, err := s.ports.Search.Subsearch(input.Prefix)
	if err != nil {
		return nil, ListKeysOutput{}, err
	}
	keys := sub.FlatKeys()
	return nil, ListKeysOutput{Keys: keys, Count: len(keys)}, nil
}
