package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/ports"
	"survey-backend/domain/core/entities"
	apperrors "survey-backend/pkg/errors"
)

// UserSettingsService keeps one settings document per (user, settings type)
// for the configured user. Records are located by scanning, since the
// identity is not derived from the pair.
type UserSettingsService struct {
	crud[entities.UserSettings]
	opts Options
}

func NewUserSettingsService(store ports.Store[entities.UserSettings], opts Options, logger *zap.Logger) *UserSettingsService {
	opts = opts.withDefaults()
	return &UserSettingsService{
		crud: newCrud(store, opts.Clock, logger),
		opts: opts,
	}
}

// List returns every settings document of the user.
func (s *UserSettingsService) List(ctx context.Context) ([]*entities.UserSettings, error) {
	all, err := s.scan(ctx)
	if err != nil {
		return []*entities.UserSettings{}, err
	}
	out := make([]*entities.UserSettings, 0, len(all))
	for _, u := range all {
		if u.UserID == s.opts.UserID {
			out = append(out, u)
		}
	}
	return out, nil
}

// Get returns the document of settingsType, or nil.
func (s *UserSettingsService) Get(ctx context.Context, settingsType string) (*entities.UserSettings, error) {
	all, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.Matches(s.opts.UserID, settingsType) {
			return u, nil
		}
	}
	return nil, nil
}

// Create fails with CONFLICT when the user already has that settings type.
func (s *UserSettingsService) Create(ctx context.Context, in *dto.UserSettingsCreate) (*entities.UserSettings, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.Get(ctx, in.SettingsType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("settings %q already exist for user %s", in.SettingsType, s.opts.UserID))
	}
	u := entities.NewUserSettings(s.opts.UserID, in.SettingsType, in.SettingsData, s.clock())
	return s.create(ctx, u)
}

// Update replaces the document of settingsType; nil when there is none.
func (s *UserSettingsService) Update(ctx context.Context, settingsType string, in *dto.UserSettingsUpdate) (*entities.UserSettings, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.Get(ctx, settingsType)
	if err != nil || existing == nil {
		return nil, err
	}
	return s.update(ctx, existing.UserSettingsID, func(u *entities.UserSettings) error {
		in.Apply(u)
		u.Touch(s.clock())
		return nil
	})
}

// Upsert updates the document of in.SettingsType or creates it.
func (s *UserSettingsService) Upsert(ctx context.Context, in *dto.UserSettingsCreate) (*entities.UserSettings, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.Get(ctx, in.SettingsType)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		u := entities.NewUserSettings(s.opts.UserID, in.SettingsType, in.SettingsData, s.clock())
		return s.create(ctx, u)
	}
	return s.update(ctx, existing.UserSettingsID, func(u *entities.UserSettings) error {
		u.SettingsData = in.SettingsData
		u.IsActive = true
		u.Touch(s.clock())
		return nil
	})
}

// Delete removes the document of settingsType.
func (s *UserSettingsService) Delete(ctx context.Context, settingsType string) (bool, error) {
	existing, err := s.Get(ctx, settingsType)
	if err != nil || existing == nil {
		return false, err
	}
	return s.remove(ctx, existing.UserSettingsID)
}
