// Package seed provides the command that loads default plans, the first
// super admin and the homepage content.
package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talento-hq/talento/internal/infrastructure/auth"
	"github.com/talento-hq/talento/internal/infrastructure/config"
	"github.com/talento-hq/talento/internal/infrastructure/database"
	"github.com/talento-hq/talento/internal/infrastructure/migration"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/seeds"
	"github.com/talento-hq/talento/internal/infrastructure/repository"
	"github.com/talento-hq/talento/internal/shared/logger"
)

var (
	env     string
	migrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed default data",
		Long:  `Insert the default plan catalog, the super admin account and the homepage content. Existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Run migrations before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	ctx := cmd.Context()
	db := database.Get()
	log := logger.NewLogger().Named("seed")

	if migrate {
		if err := migration.NewManager(cfg.Database.Driver).Migrate(ctx, db); err != nil {
			return err
		}
	}

	seeder := seeds.NewSeeder(
		repository.NewPlanRepository(db, log),
		repository.NewAccountRepository(db, log),
		repository.NewSettingsRepository(db, log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		cfg.Payment.Currency,
		log,
	)

	result, err := seeder.Run(ctx, cfg.Seed)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Printf("Seed completed:\n")
	fmt.Printf("  Plans created:   %d\n", result.PlansCreated)
	fmt.Printf("  Admin created:   %t (%s)\n", result.AdminCreated, result.AdminEmail)
	fmt.Printf("  Homepage seeded: %t\n", result.HomepageSeeded)

	return nil
}
