// Package seed provides helpers to create development and demo data.
// Not intended for production use.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"pulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control how much data Run generates.
type Options struct {
	Users        int
	PostsPerUser int
	// VoteRatio is the probability that a given (user, post) pair votes.
	VoteRatio float64
	Password  string
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{
		Users:        5,
		PostsPerUser: 4,
		VoteRatio:    0.4,
		Password:     "Seedpass123",
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a fake email and the given password.
func (f *Factory) CreateUser(password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("%s-%s@%s", gofakeit.Username(), gofakeit.DigitN(4), gofakeit.DomainName()),
		Password: string(hashed),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}

// CreatePost persists a post owned by the given user with a created_at spread
// over the last 90 days.
func (f *Factory) CreatePost(owner *models.User) (*models.Post, error) {
	post := &models.Post{
		Title:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		Published: f.rng.Float64() < 0.9,
		OwnerID:   owner.ID,
		CreatedAt: time.Now().Add(-time.Duration(f.rng.Intn(90*24)) * time.Hour),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("create seed post: %w", err)
	}
	return post, nil
}

// Vote records a vote, honoring the one-vote-per-user-per-post constraint by
// skipping pairs that already voted.
func (f *Factory) Vote(user *models.User, post *models.Post) error {
	var count int64
	if err := f.db.Model(&models.Vote{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return f.db.Create(&models.Vote{UserID: user.ID, PostID: post.ID}).Error
}

// Run populates the database with users, posts and votes per opts.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	posts := make([]*models.Post, 0, opts.Users*opts.PostsPerUser)

	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser(opts.Password)
		if err != nil {
			return err
		}
		users = append(users, user)

		for j := 0; j < opts.PostsPerUser; j++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return err
			}
			posts = append(posts, post)
		}
	}

	votes := 0
	for _, user := range users {
		for _, post := range posts {
			if f.rng.Float64() >= opts.VoteRatio {
				continue
			}
			if err := f.Vote(user, post); err != nil {
				return err
			}
			votes++
		}
	}

	log.Printf("Seeded %d users, %d posts, %d votes", len(users), len(posts), votes)
	return nil
}
