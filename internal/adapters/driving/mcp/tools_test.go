package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	search := domain.NewSearch(domain.Object{Fields: []domain.Field{
		{Name: "train", Child: domain.Object{Fields: []domain.Field{
			{Name: "batch_size", Child: domain.Scalar{Val: int64(64)}},
		}}},
		{Name: "valid", Child: domain.Object{Fields: []domain.Field{
			{Name: "batch_size", Child: domain.Scalar{Val: int64(128)}},
		}}},
		{Name: "version", Child: domain.Scalar{Val: int64(1)}},
	}})

	s, err := NewServer(&Ports{Search: search, Document: "config.yaml"})
	require.NoError(t, err)
	return s
}

func intPtr(n int) *int { return &n }

func TestNewServer_InvalidPorts(t *testing.T) {
	_, err := NewServer(&Ports{})
	assert.Error(t, err)

	_, err = NewServer(nil)
	assert.Error(t, err)
}

func TestHandleListKeys(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleListKeys(context.Background(), nil, ListKeysInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{"train.batch_size", "valid.batch_size", "version"}, out.Keys)
	assert.Equal(t, 3, out.Count)
}

func TestHandleListKeys_MaxDepth(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleListKeys(context.Background(), nil, ListKeysInput{
		MaxDepth: intPtr(0),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"version"}, out.Keys)
}

func TestHandleListKeys_FixedDepth(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleListKeys(context.Background(), nil, ListKeysInput{
		FixedDepth: intPtr(1),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"train.batch_size", "valid.batch_size"}, out.Keys)
}

func TestHandleGetValue(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleGetValue(context.Background(), nil, GetValueInput{
		Key: "train.batch_size",
	})

	require.NoError(t, err)
	assert.Equal(t, "train.batch_size", out.Key)
	assert.Equal(t, "64", out.Value)
}

func TestHandleGetValue_NotFound(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleGetValue(context.Background(), nil, GetValueInput{
		Key: "missing",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHandleGetValue_MalformedKey(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleGetValue(context.Background(), nil, GetValueInput{
		Key: "train[",
	})

	assert.ErrorIs(t, err, domain.ErrMalformedKey)
}

func TestHandleFindKeys(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleFindKeys(context.Background(), nil, FindKeysInput{
		Substring: "batch",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"train.batch_size", "valid.batch_size"}, out.Keys)
	assert.Equal(t, 2, out.Count)
}

func TestHandleFindKeys_NoMatch(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleFindKeys(context.Background(), nil, FindKeysInput{
		Substring: "nothing",
	})

	require.NoError(t, err)
	assert.Empty(t, out.Keys)
	assert.Equal(t, 0, out.Count)
}

func TestHandleSubsearch(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleSubsearch(context.Background(), nil, SubsearchInput{
		Prefix: "train",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"batch_size"}, out.Keys)
}

func TestHandleSubsearch_NotFound(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleSubsearch(context.Background(), nil, SubsearchInput{
		Prefix: "missing",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
