package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticle() Article {
	author := User{
		ID:       1,
		Username: "alice",
		Bio:      "gopher",
		Image:    "https://example.com/alice.png",
		FollowedBy: []User{
			{ID: 2, Username: "bob"},
		},
	}

	return Article{
		ID:          10,
		Slug:        "hello-world-1",
		Title:       "Hello World",
		Description: "greetings",
		Body:        "a very long body",
		AuthorID:    1,
		Author:      author,
		Tags: []Tag{
			{ID: 1, Name: "intro"},
			{ID: 2, Name: "golang"},
		},
		FavoritedBy: []User{
			{ID: 2, Username: "bob"},
			{ID: 3, Username: "carol"},
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewArticleSummaryAnonymousViewer(t *testing.T) {
	summary := NewArticleSummary(sampleArticle(), 0)

	assert.False(t, summary.Favorited)
	assert.False(t, summary.Author.Following)
	assert.Equal(t, 2, summary.FavoritesCount)
}

func TestNewArticleSummaryViewerRelativeFlags(t *testing.T) {
	article := sampleArticle()

	// bob favorited the article and follows alice
	summary := NewArticleSummary(article, 2)
	assert.True(t, summary.Favorited)
	assert.True(t, summary.Author.Following)

	// carol favorited but does not follow
	summary = NewArticleSummary(article, 3)
	assert.True(t, summary.Favorited)
	assert.False(t, summary.Author.Following)

	// dave did neither
	summary = NewArticleSummary(article, 4)
	assert.False(t, summary.Favorited)
	assert.False(t, summary.Author.Following)
}

func TestNewArticleSummaryTagsSortedAscending(t *testing.T) {
	summary := NewArticleSummary(sampleArticle(), 0)

	assert.Equal(t, []string{"golang", "intro"}, summary.TagList)
}

func TestArticleSummaryNeverSerializesBody(t *testing.T) {
	summary := NewArticleSummary(sampleArticle(), 0)

	raw, err := json.Marshal(summary)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	_, hasBody := fields["body"]
	assert.False(t, hasBody)
	assert.Equal(t, "hello-world-1", fields["slug"])
}

func TestNewArticleDetailIncludesBody(t *testing.T) {
	detail := NewArticleDetail(sampleArticle(), 0)

	assert.Equal(t, "a very long body", detail.Body)
	assert.Equal(t, "Hello World", detail.Title)
}

func TestNewArticleSummariesEmptyPageIsNotNil(t *testing.T) {
	summaries := NewArticleSummaries(nil, 0)

	require.NotNil(t, summaries)
	assert.Len(t, summaries, 0)

	raw, err := json.Marshal(summaries)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestNewArticleSummariesPreservesFetchOrder(t *testing.T) {
	first := sampleArticle()
	second := sampleArticle()
	second.Slug = "second-article-1"

	summaries := NewArticleSummaries([]Article{first, second}, 0)

	require.Len(t, summaries, 2)
	assert.Equal(t, "hello-world-1", summaries[0].Slug)
	assert.Equal(t, "second-article-1", summaries[1].Slug)
}

func TestNewProfile(t *testing.T) {
	user := User{
		Username:   "alice",
		Bio:        "gopher",
		Image:      "img",
		FollowedBy: []User{{ID: 7}},
	}

	assert.True(t, NewProfile(user, 7).Following)
	assert.False(t, NewProfile(user, 8).Following)
	assert.False(t, NewProfile(user, 0).Following)
}
