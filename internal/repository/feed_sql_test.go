package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestPostRepository_List_FeedQueryShape pins the generated feed SQL against
// the postgres dialect: the vote count must come from a LEFT JOIN so zero-vote
// posts survive the GROUP BY, and ordering must be by post id.
func TestPostRepository_List_FeedQueryShape(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT posts\.\*, COUNT\(votes\.id\) AS votes FROM "posts" LEFT JOIN votes ON votes\.post_id = posts\.id WHERE posts\.title LIKE \$1 GROUP BY posts\.id ORDER BY posts\.id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs("%coffee%", 3, 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "published", "owner_id", "votes"}).
			AddRow(7, "coffee", "beans", true, 1, 4))

	repo := NewPostRepository(db)
	posts, err := repo.List(context.Background(), "coffee", 3, 6)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint(7), posts[0].ID)
	assert.Equal(t, 4, posts[0].Votes)

	assert.NoError(t, mock.ExpectationsWereMet())
}
