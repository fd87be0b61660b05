package category

import (
	"time"

	"github.com/frahmantamala/category/internal/core/common/validation"
	"github.com/google/uuid"
)

// Properties is the attribute bundle of a category. Optional fields are
// pointers so an absent value stays distinguishable from a zero value.
type Properties struct {
	Name        string
	Description *string
	IsActive    *bool
	CreatedAt   *time.Time
}

type Category struct {
	id          string
	name        string
	description *string
	isActive    bool
	createdAt   time.Time
}

// New builds a category from props. An empty id is replaced with a random
// v4 UUID; a non-empty id is kept as given.
func New(props Properties, id string) *Category {
	if id == "" {
		id = uuid.NewString()
	}

	resolved := props.normalize(time.Now())
	return &Category{
		id:          id,
		name:        resolved.Name,
		description: resolved.Description,
		isActive:    *resolved.IsActive,
		createdAt:   *resolved.CreatedAt,
	}
}

// normalize resolves IsActive and CreatedAt. Description is left untouched.
func (p Properties) normalize(now time.Time) Properties {
	resolved := Properties{
		Name:        p.Name,
		Description: cloneString(p.Description),
	}

	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	resolved.IsActive = &active

	createdAt := now
	if p.CreatedAt != nil {
		createdAt = *p.CreatedAt
	}
	resolved.CreatedAt = &createdAt

	return resolved
}

func (c *Category) ID() string {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() *string {
	return cloneString(c.description)
}

func (c *Category) IsActive() bool {
	return c.isActive
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

// Props returns a copy of the resolved properties.
func (c *Category) Props() Properties {
	active := c.isActive
	createdAt := c.createdAt
	return Properties{
		Name:        c.name,
		Description: cloneString(c.description),
		IsActive:    &active,
		CreatedAt:   &createdAt,
	}
}

// setDescription stores nil for a nil or empty description.
func (c *Category) setDescription(description *string) {
	if description == nil || *description == "" {
		c.description = nil
		return
	}
	c.description = cloneString(description)
}

func (c *Category) setActive(value *bool) {
	c.isActive = true
	if value != nil {
		c.isActive = *value
	}
}

// IsValidID reports whether id is a well-formed version 4 UUID.
func IsValidID(id string) bool {
	return validation.IsUUIDv4(id)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
