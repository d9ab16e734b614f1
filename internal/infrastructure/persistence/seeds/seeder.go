// Package seeds loads catalog fixtures from YAML into the database. Used by
// the migrate command to bootstrap a fresh environment.
package seeds

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"subtrack/internal/infrastructure/persistence/models"
	"subtrack/internal/shared/constants"
	"subtrack/internal/shared/logger"
)

type seedPlan struct {
	Name         string   `yaml:"name"`
	BillingCycle string   `yaml:"billing_cycle"`
	Price        string   `yaml:"price"`
	Currency     string   `yaml:"currency"`
	Benefits     []string `yaml:"benefits"`
}

type seedService struct {
	Name         string     `yaml:"name"`
	Category     string     `yaml:"category"`
	Description  string     `yaml:"description"`
	OfficialLink string     `yaml:"official_link"`
	Plans        []seedPlan `yaml:"plans"`
}

type seedFile struct {
	Services []seedService `yaml:"services"`
}

// Seeder inserts catalog fixtures. Existing services (matched by name) are
// left untouched so seeding is idempotent.
type Seeder struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSeeder(db *gorm.DB, logger logger.Interface) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// SeedCatalog loads the YAML fixture at path and inserts any services not
// already present.
func (s *Seeder) SeedCatalog(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	s.logger.Infow("seeding catalog", "path", path, "services", len(file.Services))

	var created int
	for _, svc := range file.Services {
		inserted, err := s.seedService(ctx, svc)
		if err != nil {
			return fmt.Errorf("failed to seed service %q: %w", svc.Name, err)
		}
		if inserted {
			created++
		}
	}

	s.logger.Infow("catalog seeding completed",
		"created", created,
		"skipped", len(file.Services)-created)
	return nil
}

func (s *Seeder) seedService(ctx context.Context, svc seedService) (bool, error) {
	if svc.Name == "" {
		return false, fmt.Errorf("service name is required")
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.ServiceModel{}).
		Where("name = ?", svc.Name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing service: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	return true, s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		serviceModel := &models.ServiceModel{
			Name:         svc.Name,
			Category:     svc.Category,
			Description:  svc.Description,
			OfficialLink: svc.OfficialLink,
		}
		if err := tx.Create(serviceModel).Error; err != nil {
			return err
		}

		for _, p := range svc.Plans {
			planModel, err := s.buildPlanModel(serviceModel.ID, p)
			if err != nil {
				return err
			}
			if err := tx.Create(planModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Seeder) buildPlanModel(serviceID uint, p seedPlan) (*models.PlanModel, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q for plan %q: %w", p.Price, p.Name, err)
	}

	currency := p.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	cycle := p.BillingCycle
	if cycle == "" {
		cycle = "month"
	}

	var benefits datatypes.JSON
	if len(p.Benefits) > 0 {
		raw, err := json.Marshal(p.Benefits)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal benefits for plan %q: %w", p.Name, err)
		}
		benefits = datatypes.JSON(raw)
	}

	return &models.PlanModel{
		ServiceID:    serviceID,
		Name:         p.Name,
		BillingCycle: cycle,
		Price:        price,
		Currency:     currency,
		Benefits:     benefits,
	}, nil
}
