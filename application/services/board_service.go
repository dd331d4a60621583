package services

import (
	"context"

	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/ports"
	"survey-backend/domain/core/entities"
	"survey-backend/domain/core/valueobjects"
)

// BoardService manages the user's board configurations. Slugs are unique
// among active boards, and at most one active board is the default.
type BoardService struct {
	crud[entities.BoardConfiguration]
	opts Options
}

func NewBoardService(store ports.Store[entities.BoardConfiguration], opts Options, logger *zap.Logger) *BoardService {
	opts = opts.withDefaults()
	return &BoardService{
		crud: newCrud(store, opts.Clock, logger),
		opts: opts,
	}
}

// List returns the user's active boards.
func (s *BoardService) List(ctx context.Context) ([]*entities.BoardConfiguration, error) {
	boards, err := s.active(ctx)
	if err != nil {
		return []*entities.BoardConfiguration{}, err
	}
	return boards, nil
}

func (s *BoardService) Get(ctx context.Context, id string) (*entities.BoardConfiguration, error) {
	return s.get(ctx, id)
}

// BySlug returns the active board with slug, or nil.
func (s *BoardService) BySlug(ctx context.Context, slug string) (*entities.BoardConfiguration, error) {
	boards, err := s.active(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range boards {
		if b.BoardSlug == slug {
			return b, nil
		}
	}
	return nil, nil
}

// Default returns the user's default board, or nil.
func (s *BoardService) Default(ctx context.Context) (*entities.BoardConfiguration, error) {
	boards, err := s.active(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range boards {
		if b.IsDefault {
			return b, nil
		}
	}
	return nil, nil
}

// Create derives a slug from the name, suffixing -2, -3 ... when another
// active board already uses it.
func (s *BoardService) Create(ctx context.Context, in *dto.BoardConfigurationCreate) (*entities.BoardConfiguration, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	boards, err := s.active(ctx)
	if err != nil {
		return nil, err
	}

	b := entities.NewBoardConfiguration(in.BoardName, s.opts.UserID, s.clock(), s.opts.Principal)
	b.Description = in.Description
	b.IsDefault = in.IsDefault
	b.BoardSlug = valueobjects.UniqueSlug(b.BoardSlug, func(slug string) bool {
		for _, other := range boards {
			if other.BoardSlug == slug {
				return true
			}
		}
		return false
	})

	created, err := s.create(ctx, b)
	if err != nil {
		return nil, err
	}
	if created.IsDefault {
		s.clearDefaults(ctx, boards, created.BoardConfigID)
	}
	s.logger.Info("Board configuration created", zap.String("id", b.BoardConfigID), zap.String("slug", b.BoardSlug))
	return created, nil
}

func (s *BoardService) Update(ctx context.Context, id string, in *dto.BoardConfigurationUpdate) (*entities.BoardConfiguration, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	updated, err := s.update(ctx, id, func(b *entities.BoardConfiguration) error {
		in.Apply(b)
		if !b.IsActive {
			b.IsDefault = false
		}
		b.TouchBy(s.clock(), s.opts.Principal)
		return nil
	})
	if err != nil || updated == nil {
		return updated, err
	}
	if updated.IsDefault {
		boards, err := s.active(ctx)
		if err == nil {
			s.clearDefaults(ctx, boards, updated.BoardConfigID)
		}
	}
	return updated, nil
}

// Delete deactivates the board, which also stops it being the default.
func (s *BoardService) Delete(ctx context.Context, id string) (bool, error) {
	b, err := s.update(ctx, id, func(b *entities.BoardConfiguration) error {
		b.Deactivate(s.clock(), s.opts.Principal)
		return nil
	})
	return b != nil, err
}

func (s *BoardService) active(ctx context.Context) ([]*entities.BoardConfiguration, error) {
	all, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.BoardConfiguration, 0, len(all))
	for _, b := range all {
		if b.IsActive && b.UserID == s.opts.UserID {
			out = append(out, b)
		}
	}
	return out, nil
}

// clearDefaults unsets IsDefault on every board but keep. Failures are
// logged; the new default has already been written.
func (s *BoardService) clearDefaults(ctx context.Context, boards []*entities.BoardConfiguration, keep string) {
	for _, b := range boards {
		if b.BoardConfigID == keep || !b.IsDefault {
			continue
		}
		b.IsDefault = false
		b.TouchBy(s.clock(), s.opts.Principal)
		if err := s.store.Replace(ctx, b); err != nil {
			s.failed("replace", b.BoardConfigID, err)
		}
	}
}
