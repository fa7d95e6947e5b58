package seed

import (
	"errors"
	"fmt"
	"log"

	"weblog/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	Clean       bool
}

// FixedAuthorID is the author of the fixed sample post. The seeder
// guarantees this user exists before inserting the post, so the insert can
// never trip the posts.user_id foreign key.
const FixedAuthorID = 12

// Run populates the database with sample blog data: a user pool, NumPosts
// randomized posts with NumComments comments spread across them, and one
// fixed post with literal values. Re-running appends more rows; pass Clean
// to reset first.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 10
	}
	if opts.NumComments <= 0 {
		opts.NumComments = 20
	}

	if opts.Clean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rnd.Intn(len(users))]
		posts = append(posts, f.BuildPost(author))
	}
	if err := f.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("seeded %d posts", len(posts))

	for i := 0; i < opts.NumComments; i++ {
		target := posts[f.rnd.Intn(len(posts))]
		if _, err := f.CreateComment(target); err != nil {
			return fmt.Errorf("failed to create comments: %w", err)
		}
	}
	log.Printf("seeded %d comments", opts.NumComments)

	fixedAuthor, err := ensureUser(db, f, FixedAuthorID)
	if err != nil {
		return fmt.Errorf("failed to ensure fixed post author: %w", err)
	}

	fixedPost := &models.Post{
		UserID:      fixedAuthor.ID,
		Title:       "title",
		Description: "description",
	}
	if err := db.Create(fixedPost).Error; err != nil {
		return fmt.Errorf("failed to create fixed post: %w", err)
	}
	log.Printf("seeded fixed post %d (author %d)", fixedPost.ID, fixedAuthor.ID)

	return nil
}

// ensureUser returns the user with the given ID, creating it when absent.
func ensureUser(db *gorm.DB, f *Factory, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created, err := f.CreateUser(func(u *models.User) {
		u.ID = id
	})
	if err != nil {
		return nil, err
	}
	if err := advanceUserSequence(db, id); err != nil {
		return nil, err
	}
	return created, nil
}

// advanceUserSequence keeps the users id sequence ahead of an explicit-ID
// insert; without it a later pool insert would draw the same id and fail
// with a duplicate key. Only Postgres assigns ids from a sequence, sqlite
// picks max(id)+1 on its own.
func advanceUserSequence(db *gorm.DB, id uint) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return db.Exec(
		"SELECT setval(pg_get_serial_sequence('users','id'), GREATEST((SELECT MAX(id) FROM users), ?))",
		id,
	).Error
}

// clearData empties the blog tables in FK order.
func clearData(db *gorm.DB) error {
	for _, stmt := range []string{
		"DELETE FROM comments",
		"DELETE FROM posts",
		"DELETE FROM users",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
