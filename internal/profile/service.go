package profile

import (
	"context"
	"errors"
	"time"

	"github.com/example/perfdash/internal/auth"
	"github.com/example/perfdash/internal/config"
	"github.com/example/perfdash/internal/storage"
	"github.com/google/uuid"
)

var ErrUnauthorized = errors.New("unauthorized")

type ProfileService interface {
	// Get returns the caller's profile, or nil before the first update.
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, dto UpdateProfileDTO) (*Profile, error)
	UploadAvatar(ctx context.Context, data []byte, filename string) (string, error)
}

type profileService struct {
	repo  ProfileRepository
	store storage.Store
}

func NewService(repo ProfileRepository, store storage.Store) ProfileService {
	return &profileService{repo: repo, store: store}
}

func currentUserID(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return uuid.MustParse(claims.UserID), nil
}

func (s *profileService) Get(ctx context.Context) (*Profile, error) {
	log := config.WithContext(ctx)

	userID, err := currentUserID(ctx)
	if err != nil {
		log.Warn("Attempt to read profile without authentication")
		return nil, err
	}

	p, err := s.repo.FindByID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load profile")
		return nil, err
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, dto UpdateProfileDTO) (*Profile, error) {
	log := config.WithContext(ctx)

	userID, err := currentUserID(ctx)
	if err != nil {
		log.Warn("Attempt to update profile without authentication")
		return nil, err
	}

	p, err := s.repo.FindByID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load profile for update")
		return nil, err
	}
	if p == nil {
		p = &Profile{ID: userID}
	}

	if dto.FirstName != nil {
		p.FirstName = dto.FirstName
	}
	if dto.LastName != nil {
		p.LastName = dto.LastName
	}
	if dto.Position != nil {
		p.Position = dto.Position
	}
	if dto.Department != nil {
		p.Department = dto.Department
	}
	if dto.Manager != nil {
		p.Manager = dto.Manager
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Upsert(p); err != nil {
		log.WithError(err).Error("Failed to upsert profile")
		return nil, err
	}

	log.WithField("user_id", userID).Info("Profile updated")
	return p, nil
}

func (s *profileService) UploadAvatar(ctx context.Context, data []byte, filename string) (string, error) {
	log := config.WithContext(ctx)

	userID, err := currentUserID(ctx)
	if err != nil {
		log.Warn("Attempt to upload avatar without authentication")
		return "", err
	}

	processed, err := processAvatar(data)
	if err != nil {
		log.WithError(err).Warn("Rejected avatar upload")
		return "", err
	}

	path := storage.UniqueFilename("avatars/"+userID.String(), avatarObjectName(filename))
	if err := s.store.Save(path, processed); err != nil {
		log.WithError(err).Error("Failed to store avatar")
		return "", err
	}

	url := s.store.PublicURL(path)
	if err := s.repo.UpdateAvatarURL(userID, url); err != nil {
		log.WithError(err).Error("Failed to persist avatar URL")
		return "", err
	}

	log.WithField("user_id", userID).Info("Avatar uploaded")
	return url, nil
}
