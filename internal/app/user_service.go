package app

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"goblog-api/internal/model"
	"goblog-api/internal/pkg/jwtutil"
	"goblog-api/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUserExists   = errors.New("email or name already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
)

// ActivityPublisher enqueues audit events for asynchronous persistence.
// Publishing is fire-and-forget at every call site.
type ActivityPublisher interface {
	Publish(ctx context.Context, activity model.Activity) error
}

// RelationCache is the optional redis-backed cache for the two
// relation-expansion reads. Services tolerate a nil cache.
type RelationCache interface {
	GetUserPosts(ctx context.Context, userID uint) ([]model.Post, bool, error)
	SetUserPosts(ctx context.Context, userID uint, posts []model.Post) error
	DeleteUserPosts(ctx context.Context, userID uint) error
	GetPostComments(ctx context.Context, postID uint) ([]model.Comment, bool, error)
	SetPostComments(ctx context.Context, postID uint, comments []model.Comment) error
	DeletePostComments(ctx context.Context, postID uint) error
}

type UserService struct {
	userRepo      *repository.UserRepository
	publisher     ActivityPublisher
	relationCache RelationCache
	jwtSecret     string
	jwtExpiration time.Duration
}

type SignUpInput struct {
	Name  string
	Email string
}

func NewUserService(
	userRepo *repository.UserRepository,
	publisher ActivityPublisher,
	relationCache RelationCache,
	jwtSecret string,
	jwtExpiration time.Duration,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		publisher:     publisher,
		relationCache: relationCache,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// SignUp creates a user and issues its access credential in one transaction.
// The conflict check deliberately does not disclose which field collided.
func (s *UserService) SignUp(input SignUpInput) (*model.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if len(name) < 3 || email == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.userRepo.GetByNameOrEmail(name, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := &model.User{
		Name:  name,
		Email: email,
	}
	err = s.userRepo.CreateWithCredential(user, func(id uint) (string, error) {
		return jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, id)
	})
	if err != nil {
		return nil, err
	}

	publishActivity(s.publisher, model.ActivityUserSignup, user.ID, user.ID)
	return user, nil
}

// ListUsers returns every user through the redacted listing view.
func (s *UserService) ListUsers() ([]model.PublicUser, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, err
	}

	public := make([]model.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

func (s *UserService) GetUserPosts(userID uint) ([]model.Post, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	if s.relationCache != nil {
		posts, hit, err := s.relationCache.GetUserPosts(context.Background(), userID)
		if err != nil {
			log.Printf("read user posts cache failed: %v", err)
		} else if hit {
			return posts, nil
		}
	}

	user, err := s.userRepo.GetByIDWithPosts(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	posts := user.Posts
	if posts == nil {
		posts = []model.Post{}
	}
	if s.relationCache != nil {
		if err := s.relationCache.SetUserPosts(context.Background(), userID, posts); err != nil {
			log.Printf("write user posts cache failed: %v", err)
		}
	}
	return posts, nil
}

func publishActivity(p ActivityPublisher, kind string, userID, subjectID uint) {
	if p == nil {
		return
	}
	activity := model.Activity{Kind: kind, UserID: userID, SubjectID: subjectID}
	if err := p.Publish(context.Background(), activity); err != nil {
		log.Printf("publish %s activity failed: %v", kind, err)
	}
}
