package repositories

import (
	"testing"
	"time"

	"conduit-api/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ArticleRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	repo  ArticleRepository
	alice *models.User
	bob   *models.User
	carol *models.User
}

func TestArticleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleRepositoryTestSuite))
}

func (s *ArticleRepositoryTestSuite) SetupSuite() {
	s.db = openTestDB(s.T(), "article_repository")
	s.repo = NewArticleRepository(s.db)

	s.alice = createUser(s.T(), s.db, "alice")
	s.bob = createUser(s.T(), s.db, "bob")
	s.carol = createUser(s.T(), s.db, "carol")

	goTag := models.Tag{Name: "golang"}
	webTag := models.Tag{Name: "web"}
	s.Require().NoError(s.db.Create(&goTag).Error)
	s.Require().NoError(s.db.Create(&webTag).Error)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// 12 articles by alice, ascending timestamps; even ones tagged golang
	for i := 0; i < 12; i++ {
		tags := []models.Tag{}
		if i%2 == 0 {
			tags = append(tags, goTag)
		}
		createArticle(s.T(), s.db, s.alice, s.aliceSlug(i), base.Add(time.Duration(i)*time.Hour), tags...)
	}

	// 2 articles by bob, tagged web, favorited by carol
	for i := 0; i < 2; i++ {
		article := createArticle(s.T(), s.db, s.bob, s.bobSlug(i), base.Add(time.Duration(24+i)*time.Hour), webTag)
		s.Require().NoError(s.repo.AddFavorite(article, s.carol))
	}

	// carol follows alice
	s.Require().NoError(s.db.Model(s.alice).Association("FollowedBy").Append(s.carol))
}

func (s *ArticleRepositoryTestSuite) aliceSlug(i int) string {
	return "alice-article-" + string(rune('a'+i))
}

func (s *ArticleRepositoryTestSuite) bobSlug(i int) string {
	return "bob-article-" + string(rune('a'+i))
}

func (s *ArticleRepositoryTestSuite) filter(author, tag, favorited string, offset, limit int) models.ArticleFilter {
	return models.ArticleFilter{
		Author:    author,
		Tag:       tag,
		Favorited: favorited,
		Offset:    offset,
		Limit:     limit,
	}
}

func (s *ArticleRepositoryTestSuite) TestCountIgnoresPagination() {
	_, total, err := s.repo.GetList(s.filter("", "", "", 0, 3))
	s.Require().NoError(err)
	s.Equal(int64(14), total)

	articles, total, err := s.repo.GetList(s.filter("", "", "", 100, 3))
	s.Require().NoError(err)
	s.Equal(int64(14), total)
	s.Len(articles, 0)
}

func (s *ArticleRepositoryTestSuite) TestAuthorFilterWithPagination() {
	articles, total, err := s.repo.GetList(s.filter("alice", "", "", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(12), total)
	s.Len(articles, 10)

	articles, total, err = s.repo.GetList(s.filter("alice", "", "", 10, 10))
	s.Require().NoError(err)
	s.Equal(int64(12), total)
	s.Len(articles, 2)
}

func (s *ArticleRepositoryTestSuite) TestTagFilter() {
	_, total, err := s.repo.GetList(s.filter("", "golang", "", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(6), total)

	_, total, err = s.repo.GetList(s.filter("", "web", "", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *ArticleRepositoryTestSuite) TestFavoritedFilter() {
	articles, total, err := s.repo.GetList(s.filter("", "", "carol", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(articles, 2)

	_, total, err = s.repo.GetList(s.filter("", "", "alice", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(0), total)
}

func (s *ArticleRepositoryTestSuite) TestConjoinedPredicates() {
	_, total, err := s.repo.GetList(s.filter("alice", "golang", "", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(6), total)

	// predicates are ANDed: alice never authored a web article
	_, total, err = s.repo.GetList(s.filter("alice", "web", "", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(0), total)

	_, total, err = s.repo.GetList(s.filter("bob", "web", "carol", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *ArticleRepositoryTestSuite) TestUnknownAuthorMatchesNothing() {
	articles, total, err := s.repo.GetList(s.filter("nobody", "", "", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(0), total)
	s.Len(articles, 0)
}

func (s *ArticleRepositoryTestSuite) TestAuthorMatchIsCaseSensitive() {
	_, total, err := s.repo.GetList(s.filter("Alice", "", "", 0, 10))
	s.Require().NoError(err)
	s.Equal(int64(0), total)
}

func (s *ArticleRepositoryTestSuite) TestOrderedNewestFirst() {
	articles, _, err := s.repo.GetList(s.filter("", "", "", 0, 100))
	s.Require().NoError(err)
	s.Require().NotEmpty(articles)

	for i := 1; i < len(articles); i++ {
		prev, cur := articles[i-1], articles[i]
		s.False(cur.CreatedAt.After(prev.CreatedAt))
		if cur.CreatedAt.Equal(prev.CreatedAt) {
			s.Less(cur.ID, prev.ID)
		}
	}
	s.Equal(s.bobSlug(1), articles[0].Slug)
}

func (s *ArticleRepositoryTestSuite) TestPageOmitsBodyButLoadsRelations() {
	articles, _, err := s.repo.GetList(s.filter("bob", "", "", 0, 10))
	s.Require().NoError(err)
	s.Require().NotEmpty(articles)

	for _, article := range articles {
		s.Empty(article.Body)
		s.Equal("bob", article.Author.Username)
		s.Require().Len(article.Tags, 1)
		s.Equal("web", article.Tags[0].Name)
		s.Require().Len(article.FavoritedBy, 1)
		s.Equal(s.carol.ID, article.FavoritedBy[0].ID)
	}
}

func (s *ArticleRepositoryTestSuite) TestAuthorFollowersLoadedForViewerDerivation() {
	articles, _, err := s.repo.GetList(s.filter("alice", "", "", 0, 1))
	s.Require().NoError(err)
	s.Require().Len(articles, 1)

	s.True(articles[0].Author.IsFollowedBy(s.carol.ID))
	s.False(articles[0].Author.IsFollowedBy(s.bob.ID))
}

func (s *ArticleRepositoryTestSuite) TestRepeatedQueriesAreIdempotent() {
	first, firstTotal, err := s.repo.GetList(s.filter("alice", "golang", "", 0, 5))
	s.Require().NoError(err)
	second, secondTotal, err := s.repo.GetList(s.filter("alice", "golang", "", 0, 5))
	s.Require().NoError(err)

	s.Equal(firstTotal, secondTotal)
	s.Require().Equal(len(first), len(second))
	for i := range first {
		s.Equal(first[i].Slug, second[i].Slug)
	}
}

func (s *ArticleRepositoryTestSuite) TestGetFeed() {
	articles, total, err := s.repo.GetFeed([]uint{s.alice.ID}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(12), total)
	s.Len(articles, 10)

	articles, total, err = s.repo.GetFeed([]uint{s.bob.ID}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(articles, 2)
	s.Empty(articles[0].Body)
}

func (s *ArticleRepositoryTestSuite) TestGetBySlugIncludesBody() {
	article, err := s.repo.GetBySlug(s.bobSlug(0))
	s.Require().NoError(err)
	s.Equal("body of "+s.bobSlug(0), article.Body)
	s.Equal("bob", article.Author.Username)
}
