package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMigrations(t *testing.T) {
	ms := GetMigrations()
	require.Len(t, ms, 3)

	// ordered by version, each step reversible
	last := 0
	for _, m := range ms {
		assert.Greater(t, m.Version, last)
		assert.NotEmpty(t, m.UpScript)
		assert.NotEmpty(t, m.DownScript)
		assert.Contains(t, m.DownScript, "DROP TABLE IF EXISTS")
		last = m.Version
	}

	assert.Equal(t, "create_users_table", ms[0].Name)
	assert.Equal(t, "create_posts_table", ms[1].Name)
	assert.Equal(t, "create_comments_table", ms[2].Name)
}

func TestGetMigrationByVersion(t *testing.T) {
	m := GetMigrationByVersion(2)
	require.NotNil(t, m)
	assert.Equal(t, "create_posts_table", m.Name)
	assert.Equal(t, "000002_create_posts_table", m.String())

	assert.Nil(t, GetMigrationByVersion(42))
}

func TestMigrationConstraints(t *testing.T) {
	posts := GetMigrationByVersion(2)
	require.NotNil(t, posts)
	assert.True(t, strings.Contains(posts.UpScript, "REFERENCES users (id) ON DELETE RESTRICT"))

	comments := GetMigrationByVersion(3)
	require.NotNil(t, comments)
	assert.True(t, strings.Contains(comments.UpScript, "REFERENCES posts (id) ON DELETE CASCADE"))
}
