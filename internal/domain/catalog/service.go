// Package catalog holds the subscribable-service reference data: services
// and their pricing plans. Records are read-mostly; only catalog
// administrators mutate them.
package catalog

import (
	"fmt"
	"time"
)

// Service represents one subscribable service in the catalog.
type Service struct {
	id           uint
	name         string
	category     string
	description  string
	officialLink string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewService creates a new catalog service.
func NewService(name, category, description, officialLink string) (*Service, error) {
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if len(name) > 120 {
		return nil, fmt.Errorf("service name too long (max 120 characters)")
	}
	if len(category) > 40 {
		return nil, fmt.Errorf("category too long (max 40 characters)")
	}

	now := time.Now()
	return &Service{
		name:         name,
		category:     category,
		description:  description,
		officialLink: officialLink,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructService rebuilds a service from persistence.
func ReconstructService(id uint, name, category, description, officialLink string,
	createdAt, updatedAt time.Time) (*Service, error) {

	if id == 0 {
		return nil, fmt.Errorf("service ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}

	return &Service{
		id:           id,
		name:         name,
		category:     category,
		description:  description,
		officialLink: officialLink,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (s *Service) ID() uint {
	return s.id
}

func (s *Service) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) Category() string {
	return s.category
}

func (s *Service) Description() string {
	return s.description
}

func (s *Service) OfficialLink() string {
	return s.officialLink
}

func (s *Service) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Service) UpdatedAt() time.Time {
	return s.updatedAt
}

// Update replaces the mutable attributes of the service.
func (s *Service) Update(name, category, description, officialLink string) error {
	if name == "" {
		return fmt.Errorf("service name is required")
	}
	if len(name) > 120 {
		return fmt.Errorf("service name too long (max 120 characters)")
	}

	s.name = name
	s.category = category
	s.description = description
	s.officialLink = officialLink
	s.updatedAt = time.Now()
	return nil
}
