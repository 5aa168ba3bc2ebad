package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleListParamsFilter(t *testing.T) {
	tests := []struct {
		name       string
		params     ArticleListParams
		wantOffset int
		wantLimit  int
	}{
		{
			name:       "defaults when absent",
			params:     ArticleListParams{},
			wantOffset: 0,
			wantLimit:  10,
		},
		{
			name:       "numeric values parsed",
			params:     ArticleListParams{Offset: "20", Limit: "5"},
			wantOffset: 20,
			wantLimit:  5,
		},
		{
			name:       "non-numeric limit falls back to default",
			params:     ArticleListParams{Limit: "abc"},
			wantOffset: 0,
			wantLimit:  10,
		},
		{
			name:       "non-numeric offset falls back to default",
			params:     ArticleListParams{Offset: "x", Limit: "3"},
			wantOffset: 0,
			wantLimit:  3,
		},
		{
			name:       "negative values rejected",
			params:     ArticleListParams{Offset: "-5", Limit: "-1"},
			wantOffset: 0,
			wantLimit:  10,
		},
		{
			name:       "zero limit rejected",
			params:     ArticleListParams{Limit: "0"},
			wantOffset: 0,
			wantLimit:  10,
		},
		{
			name:       "limit capped",
			params:     ArticleListParams{Limit: "5000"},
			wantOffset: 0,
			wantLimit:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.params.Filter()
			assert.Equal(t, tt.wantOffset, filter.Offset)
			assert.Equal(t, tt.wantLimit, filter.Limit)
		})
	}
}

func TestArticleListParamsFilterPassesPredicates(t *testing.T) {
	params := ArticleListParams{Author: "alice", Tag: "go", Favorited: "bob"}
	filter := params.Filter()

	assert.Equal(t, "alice", filter.Author)
	assert.Equal(t, "go", filter.Tag)
	assert.Equal(t, "bob", filter.Favorited)
}
