package app

import (
	"context"
	"errors"
	"log"
	"time"

	"keyboards-api/internal/model"
	"keyboards-api/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type KeyboardService struct {
	userRepo     *repository.UserRepository
	keyboardRepo *repository.KeyboardRepository
	userCache    UserCache
	publisher    EventPublisher
	now          func() time.Time
}

// UserCache is optional; a nil cache sends every read to the store.
type UserCache interface {
	GetUser(ctx context.Context, userID uint) (*model.UserView, bool, error)
	SetUser(ctx context.Context, user model.UserView) error
	DeleteUser(ctx context.Context, userID uint) error
	MarkDirty(ctx context.Context, userID uint) error
	IsDirty(ctx context.Context, userID uint) (bool, error)
}

// EventPublisher is optional; events are fire-and-forget.
type EventPublisher interface {
	Publish(ctx context.Context, event model.RecordEvent) error
}

type Option func(*KeyboardService)

func WithUserCache(cache UserCache) Option {
	return func(s *KeyboardService) { s.userCache = cache }
}

func WithEventPublisher(publisher EventPublisher) Option {
	return func(s *KeyboardService) { s.publisher = publisher }
}

func NewKeyboardService(
	userRepo *repository.UserRepository,
	keyboardRepo *repository.KeyboardRepository,
	opts ...Option,
) *KeyboardService {
	s := &KeyboardService{
		userRepo:     userRepo,
		keyboardRepo: keyboardRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *KeyboardService) ListUsers(ctx context.Context) ([]model.UserView, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].Serialize())
	}
	return views, nil
}

func (s *KeyboardService) GetUser(ctx context.Context, userID uint) (*model.UserView, error) {
	if s.userCache != nil {
		dirty, err := s.userCache.IsDirty(ctx, userID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.userCache.GetUser(ctx, userID); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	view := user.Serialize()

	if s.userCache != nil {
		if dirty, dirtyErr := s.userCache.IsDirty(ctx, userID); dirtyErr == nil && !dirty {
			if err := s.userCache.SetUser(ctx, view); err != nil {
				log.Printf("cache user %d failed: %v", userID, err)
			}
		}
	}
	return &view, nil
}

func (s *KeyboardService) CreateUser(ctx context.Context, fields model.UserFields) (*model.UserView, error) {
	user := model.NewUser(fields)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, model.RecordEvent{
		Type:   model.EventUserCreated,
		UserID: user.ID,
	})

	view := user.Serialize()
	return &view, nil
}

func (s *KeyboardService) ListKeyboards(ctx context.Context, userID uint) ([]model.KeyboardView, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	keyboards, err := s.keyboardRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return model.SerializeKeyboards(keyboards), nil
}

func (s *KeyboardService) AddKeyboard(ctx context.Context, userID uint, fields model.KeyboardFields) (*model.KeyboardView, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	fields.UserID = &userID
	keyboard := model.NewKeyboard(fields)
	if err := s.keyboardRepo.Create(ctx, keyboard); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if s.userCache != nil {
		if err := s.userCache.MarkDirty(ctx, userID); err != nil {
			log.Printf("mark user %d dirty failed: %v", userID, err)
		}
		if err := s.userCache.DeleteUser(ctx, userID); err != nil {
			log.Printf("evict user %d failed: %v", userID, err)
		}
	}

	s.publish(ctx, model.RecordEvent{
		Type:       model.EventKeyboardCreated,
		UserID:     userID,
		KeyboardID: keyboard.ID,
	})

	view := keyboard.Serialize()
	return &view, nil
}

func (s *KeyboardService) requireUser(ctx context.Context, userID uint) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

func (s *KeyboardService) publish(ctx context.Context, event model.RecordEvent) {
	if s.publisher == nil {
		return
	}
	event.OccurredAt = s.now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("publish %s event for user %d failed: %v", event.Type, event.UserID, err)
	}
}
