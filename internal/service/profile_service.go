package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flexzone/fitness-platform/internal/domain"
	"flexzone/fitness-platform/internal/repository"
	"flexzone/fitness-platform/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("current password is incorrect")
	ErrEmailTaken        = errors.New("email is already in use")
)

// Expiry for avatar upload URLs; downloads get a longer window so the
// profile page can cache the link.
const (
	avatarUploadExpiry   = 15 * time.Minute
	avatarDownloadExpiry = 12 * time.Hour
)

// Profile is the member profile as returned to the API layer.
type Profile struct {
	User      *domain.User
	AvatarURL string // Presigned download URL, empty when no avatar is set
}

// AvatarUpload is a presigned upload slot for a new avatar image.
type AvatarUpload struct {
	UploadURL string
	Key       string
}

// --- Service Interface ---
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, email, currentPassword, newPassword string) (*Profile, error)
	RequestAvatarUpload(ctx context.Context, userID primitive.ObjectID, contentType string) (*AvatarUpload, error)
	SetAvatar(ctx context.Context, userID primitive.ObjectID, key string) error
}

// profileService implements the ProfileService interface.
type profileService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// GetProfile returns the member with a fresh avatar download URL.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.buildProfile(ctx, user), nil
}

// UpdateProfile changes name and email, and optionally the password when
// newPassword is set. A password change requires the current password.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, email, currentPassword, newPassword string) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if email != "" && email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}

	if newPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
			return nil, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrHashingFailed
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.buildProfile(ctx, user), nil
}

// RequestAvatarUpload hands out a presigned PUT URL for a new avatar. The
// browser uploads directly to storage; the key is confirmed via SetAvatar
// once the upload finishes.
func (s *profileService) RequestAvatarUpload(ctx context.Context, userID primitive.ObjectID, contentType string) (*AvatarUpload, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	key := fmt.Sprintf("avatars/%s", uuid.NewString())
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, key, contentType, avatarUploadExpiry)
	if err != nil {
		return nil, err
	}
	return &AvatarUpload{UploadURL: uploadURL, Key: key}, nil
}

// SetAvatar records the uploaded object key on the user and removes the
// previous avatar object, if any.
func (s *profileService) SetAvatar(ctx context.Context, userID primitive.ObjectID, key string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	oldKey := user.AvatarKey
	if err := s.userRepo.SetAvatarKey(ctx, userID, key); err != nil {
		return err
	}
	if oldKey != "" && oldKey != key {
		// Best effort; an orphaned object is not worth failing the request.
		_ = s.fileStorage.DeleteObject(ctx, oldKey)
	}
	return nil
}

func (s *profileService) buildProfile(ctx context.Context, user *domain.User) *Profile {
	p := &Profile{User: user}
	if user.AvatarKey != "" {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, user.AvatarKey, avatarDownloadExpiry)
		if err == nil {
			p.AvatarURL = url
		}
	}
	return p
}
