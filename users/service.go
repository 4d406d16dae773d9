package users

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/errors"
)

type Service struct {
	repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		repository: repo,
	}
}

// Register creates the user with no topics. Passwords are hashed with
// bcrypt, so the stored hash embeds a per-user salt.
func (s *Service) Register(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return errors.New("email and password are required", errors.BadRequest())
	}

	user, err := s.repository.Get(email)
	if err != nil {
		return errors.New("could not check registration", errors.WithCause(err))
	} else if user != nil {
		return errors.New("email already registered", errors.Conflict())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("could not hash password", errors.WithCause(err))
	}

	return s.repository.Upsert(&User{
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login verifies the credentials and returns the email as confirmation. No
// session or token is issued: every call is authenticated on its own.
func (s *Service) Login(email, password string) (string, error) {
	// Registration trims the email, so lookups have to as well.
	email = strings.TrimSpace(email)
	user, err := s.repository.Get(email)
	if err != nil {
		return "", errors.New("could not check credentials", errors.WithCause(err))
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", errors.New("invalid email or password", errors.Unauthorized())
	}

	return user.Email, nil
}

// Topics returns the user's topics in insertion order. Whitespace-only
// topics never reach the store, but they are filtered here anyway to stay
// faithful to the legacy reader.
func (s *Service) Topics(email string) ([]string, error) {
	user, err := s.get(email)
	if err != nil {
		return nil, err
	}

	topics := make([]string, 0, len(user.Topics))
	for _, topic := range user.Topics {
		if strings.TrimSpace(topic) == "" {
			continue
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

// AddTopic appends the trimmed topic. Duplicates are allowed: adding a topic
// twice yields two entries.
func (s *Service) AddTopic(email, topic string) error {
	user, err := s.get(email)
	if err != nil {
		return err
	}

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return errors.New("topic cannot be empty", errors.BadRequest())
	}

	user.Topics = append(user.Topics, topic)
	return s.repository.Upsert(user)
}

// DeleteTopic removes every entry matching topic exactly. There is no
// trimming here: delete is asymmetric with add on purpose, the stored string
// must be given verbatim.
func (s *Service) DeleteTopic(email, topic string) error {
	user, err := s.get(email)
	if err != nil {
		return err
	}

	kept := user.Topics[:0]
	removed := 0
	for _, t := range user.Topics {
		if t == topic {
			removed++
			continue
		}
		kept = append(kept, t)
	}

	if removed == 0 {
		return errors.New(fmt.Sprintf("topic %q not found", topic), errors.NotFound())
	}

	user.Topics = kept
	return s.repository.Upsert(user)
}

// Get returns the user for email, or a 404 error.
func (s *Service) Get(email string) (User, error) {
	user, err := s.get(email)
	if err != nil {
		return User{}, err
	}
	return *user, nil
}

// All dumps the whole registry as legacy rows, one per (user, topic) pair,
// with an empty-topic row for users without topics.
func (s *Service) All() ([]Row, error) {
	users, err := s.repository.List()
	if err != nil {
		return nil, errors.New("could not list users", errors.WithCause(err))
	}

	rows := make([]Row, 0, len(users))
	for _, user := range users {
		rows = append(rows, user.Rows()...)
	}
	return rows, nil
}

func (s *Service) get(email string) (*User, error) {
	user, err := s.repository.Get(email)
	if err != nil {
		return nil, errors.New("could not retrieve user", errors.WithCause(err))
	} else if user == nil {
		return nil, errors.New(fmt.Sprintf("user %s not found", email), errors.NotFound())
	}
	return user, nil
}
