package repositories

import (
	"fmt"
	"testing"
	"time"

	"conduit-api/config"
	"conduit-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB opens a named in-memory database so each test gets an isolated
// schema while all connections of one gorm pool share it.
func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Image:    models.DefaultUserImage,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createArticle(t *testing.T, db *gorm.DB, author *models.User, slug string, createdAt time.Time, tags ...models.Tag) *models.Article {
	t.Helper()

	article := &models.Article{
		Slug:        slug,
		Title:       slug,
		Description: "about " + slug,
		Body:        "body of " + slug,
		AuthorID:    author.ID,
		Tags:        tags,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}
