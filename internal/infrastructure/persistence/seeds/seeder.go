// Package seeds loads the default plan catalog, the first super admin and
// the homepage content into an empty database.
package seeds

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/setting"
	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/config"
	"github.com/talento-hq/talento/internal/shared/logger"
)

//go:embed catalog.yaml
var catalogYAML []byte

type planEntry struct {
	Name           string   `yaml:"name"`
	Price          float64  `yaml:"price"`
	InterviewLimit int      `yaml:"interview_limit"`
	DisplayOrder   int      `yaml:"display_order"`
	Recommended    bool     `yaml:"recommended"`
	Custom         bool     `yaml:"custom"`
	Features       []string `yaml:"features"`
}

// Catalog is the embedded default data set.
type Catalog struct {
	Plans    []planEntry    `yaml:"plans"`
	Homepage map[string]any `yaml:"homepage"`
}

// LoadCatalog parses the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	return &c, nil
}

// PasswordHasher hashes the initial admin password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Result summarizes what a run inserted.
type Result struct {
	PlansCreated   int
	AdminCreated   bool
	HomepageSeeded bool
	AdminEmail     string
}

type Seeder struct {
	plans    plan.Repository
	accounts account.Repository
	settings setting.Repository
	hasher   PasswordHasher
	currency string
	logger   logger.Interface
}

func NewSeeder(
	plans plan.Repository,
	accounts account.Repository,
	settings setting.Repository,
	hasher PasswordHasher,
	currency string,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		plans:    plans,
		accounts: accounts,
		settings: settings,
		hasher:   hasher,
		currency: currency,
		logger:   logger,
	}
}

// Run seeds everything. Each step skips data that already exists, so
// running it twice is harmless.
func (s *Seeder) Run(ctx context.Context, cfg config.SeedConfig) (*Result, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}

	result := &Result{AdminEmail: account.NormalizeEmail(cfg.AdminEmail)}

	if result.PlansCreated, err = s.SeedPlans(ctx, catalog); err != nil {
		return nil, err
	}

	admin, created, err := s.SeedAdmin(ctx, cfg)
	if err != nil {
		return nil, err
	}
	result.AdminCreated = created

	if result.HomepageSeeded, err = s.SeedHomepage(ctx, catalog, admin.ID()); err != nil {
		return nil, err
	}

	s.logger.Infow("seed completed",
		"plans_created", result.PlansCreated,
		"admin_created", result.AdminCreated,
		"homepage_seeded", result.HomepageSeeded,
	)
	return result, nil
}

// SeedPlans inserts catalog plans whose name is not taken yet.
func (s *Seeder) SeedPlans(ctx context.Context, catalog *Catalog) (int, error) {
	created := 0
	for _, entry := range catalog.Plans {
		_, err := s.plans.GetByName(ctx, entry.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, plan.ErrPlanNotFound) {
			return created, fmt.Errorf("failed to look up plan %q: %w", entry.Name, err)
		}

		quota, err := plan.NewInterviewQuota(entry.InterviewLimit)
		if err != nil {
			return created, fmt.Errorf("plan %q: %w", entry.Name, err)
		}
		p, err := plan.NewPlan(entry.Name, valueobjects.NewMoneyFromMajor(entry.Price, s.currency), quota, plan.Options{
			Features:      entry.Features,
			IsActive:      true,
			IsCustom:      entry.Custom,
			IsRecommended: entry.Recommended,
			DisplayOrder:  entry.DisplayOrder,
		})
		if err != nil {
			return created, fmt.Errorf("plan %q: %w", entry.Name, err)
		}
		if err := s.plans.Create(ctx, p); err != nil {
			return created, fmt.Errorf("failed to create plan %q: %w", entry.Name, err)
		}
		s.logger.Infow("seeded plan", "name", p.Name(), "sid", p.SID())
		created++
	}
	return created, nil
}

// SeedAdmin creates the configured super admin unless one already exists.
// The existing or new admin is returned.
func (s *Seeder) SeedAdmin(ctx context.Context, cfg config.SeedConfig) (*account.Account, bool, error) {
	existing, err := s.accounts.ListRecent(ctx, authorization.RoleSuperAdmin, 1)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up super admin: %w", err)
	}
	if len(existing) > 0 {
		return existing[0], false, nil
	}

	hash, err := s.hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin, err := account.NewAccount(cfg.AdminEmail, hash, cfg.AdminName, "Talento", authorization.RoleSuperAdmin, nil)
	if err != nil {
		return nil, false, fmt.Errorf("invalid admin seed: %w", err)
	}
	if err := s.accounts.Create(ctx, admin); err != nil {
		return nil, false, fmt.Errorf("failed to create super admin: %w", err)
	}
	s.logger.Warnw("seeded super admin, change the password after first login", "email", admin.Email())
	return admin, true, nil
}

// SeedHomepage fills the homepage section while it has no content.
func (s *Seeder) SeedHomepage(ctx context.Context, catalog *Catalog, adminID uint) (bool, error) {
	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return false, err
	}

	hp := settings.Homepage()
	if len(hp.Features) > 0 || len(hp.Testimonials) > 0 || len(hp.FAQs) > 0 {
		return false, nil
	}
	if len(catalog.Homepage) == 0 {
		return false, nil
	}

	patch, err := json.Marshal(catalog.Homepage)
	if err != nil {
		return false, fmt.Errorf("failed to encode homepage seed: %w", err)
	}
	if _, err := settings.PatchSection(setting.SectionHomepage, patch, adminID); err != nil {
		return false, fmt.Errorf("invalid homepage seed: %w", err)
	}
	if err := s.settings.SaveSection(ctx, settings, setting.SectionHomepage); err != nil {
		return false, err
	}
	return true, nil
}
