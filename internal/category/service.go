package category

import (
	"log/slog"

	"github.com/frahmantamala/category/internal"
	"github.com/frahmantamala/category/internal/core/common/validation"
)

// Service owns the domain operations that change a category after it has
// been built. It keeps nothing between calls.
type Service struct {
	logger *slog.Logger
	cfg    internal.CategoryConfig
}

func NewService(logger *slog.Logger, cfg internal.CategoryConfig) *Service {
	return &Service{
		logger: logger,
		cfg:    cfg,
	}
}

// Create builds a category. With StrictIDs enabled a supplied id must be a
// version 4 UUID and the name must be present.
func (s *Service) Create(props Properties, id string) (*Category, error) {
	if s.cfg.StrictIDs {
		if appErr := validation.ValidateCategoryID(id); appErr != nil {
			s.logger.Warn("rejected category id", "id", id, "error", appErr.GetDetailedMessage())
			return nil, appErr
		}
		if appErr := validation.ValidateCategoryName(props.Name, s.cfg.MaxNameLength); appErr != nil {
			s.logger.Warn("rejected category name", "name", props.Name, "error", appErr.GetDetailedMessage())
			return nil, appErr
		}
	}

	c := New(props, id)
	s.logger.Info("category created",
		"id", c.ID(),
		"name", c.Name(),
		"is_active", c.IsActive(),
		"created_at", c.CreatedAt(),
	)
	return c, nil
}

// UpdateDescription replaces the description. An empty string clears it.
func (s *Service) UpdateDescription(c *Category, description string) *Category {
	c.setDescription(&description)
	s.logger.Info("category description updated", "id", c.ID(), "cleared", c.Description() == nil)
	return c
}

func (s *Service) Activate(c *Category) *Category {
	active := true
	c.setActive(&active)
	s.logger.Info("category activated", "id", c.ID())
	return c
}

func (s *Service) Deactivate(c *Category) *Category {
	active := false
	c.setActive(&active)
	s.logger.Info("category deactivated", "id", c.ID())
	return c
}
