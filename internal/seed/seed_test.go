package seed

import (
	"fmt"
	"regexp"
	"testing"

	"weblog/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var memDBCounter int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared in-memory database keeps all pooled connections on
	// the same data.
	memDBCounter++
	dsn := fmt.Sprintf("file:seedtest%d?mode=memory&cache=shared", memDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	return db
}

func TestRunSeedsUsersAndPosts(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Run(db, Options{NumUsers: 3, NumPosts: 5, NumComments: 4}))

	var postCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	// 5 randomized posts plus the fixed one
	assert.Equal(t, int64(6), postCount)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	// 3 pool users plus the fixed author
	assert.Equal(t, int64(4), userCount)

	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	for _, p := range posts {
		assert.NotZero(t, p.UserID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Description)
	}

	var comments []models.Comment
	require.NoError(t, db.Find(&comments).Error)
	require.Len(t, comments, 4)
	for _, c := range comments {
		assert.NotZero(t, c.PostID)
		assert.NotEmpty(t, c.Body)
	}
}

func TestRunSeedsFixedPost(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Run(db, Options{NumUsers: 3, NumPosts: 5, NumComments: 1}))

	var author models.User
	require.NoError(t, db.First(&author, FixedAuthorID).Error)

	var fixed models.Post
	require.NoError(t, db.Where("title = ? AND description = ?", "title", "description").First(&fixed).Error)
	assert.Equal(t, uint(FixedAuthorID), fixed.UserID)
}

func TestRunAppendsOnRerun(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Run(db, Options{NumUsers: 2, NumPosts: 3, NumComments: 2}))
	require.NoError(t, Run(db, Options{NumUsers: 2, NumPosts: 3, NumComments: 2}))

	var postCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	// re-running appends, it does not reset
	assert.Equal(t, int64(8), postCount)

	var commentCount int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	assert.Equal(t, int64(4), commentCount)
}

// newMockPostgresDB backs gorm with sqlmock so Postgres-only statements can
// be asserted on; sqlite assigns ids without a sequence and cannot exercise
// this path.
func newMockPostgresDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestEnsureUserAdvancesSequence(t *testing.T) {
	db, mock := newMockPostgresDB(t)
	f := NewFactory(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(FixedAuthorID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(FixedAuthorID))
	mock.ExpectCommit()
	// an insert with an explicit id leaves the sequence behind; the seeder
	// must bump it past the id it just claimed
	mock.ExpectExec(regexp.QuoteMeta(`SELECT setval(pg_get_serial_sequence('users','id'), GREATEST((SELECT MAX(id) FROM users), $1))`)).
		WithArgs(FixedAuthorID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := ensureUser(db, f, FixedAuthorID)
	require.NoError(t, err)
	assert.Equal(t, uint(FixedAuthorID), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureUserReusesExistingRow(t *testing.T) {
	db, mock := newMockPostgresDB(t)
	f := NewFactory(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(FixedAuthorID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(FixedAuthorID, "existing"))

	user, err := ensureUser(db, f, FixedAuthorID)
	require.NoError(t, err)
	assert.Equal(t, "existing", user.Username)
	// no insert, so nothing to advance
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunCleanResets(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Run(db, Options{NumUsers: 2, NumPosts: 3, NumComments: 2}))
	require.NoError(t, Run(db, Options{NumUsers: 2, NumPosts: 3, NumComments: 2, Clean: true}))

	var postCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.Equal(t, int64(4), postCount)

	var commentCount int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	assert.Equal(t, int64(2), commentCount)
}
