package cmd

import (
	"fmt"
	"time"

	"github.com/frahmantamala/category/internal/category"
	"github.com/frahmantamala/category/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	categoryName        string
	categoryDescription string
	categoryID          string
	categoryCreatedAt   string
	categoryInactive    bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Build a category and log its resolved properties",
	Long:  `Build a category from flags, applying the same defaults as the domain code, and log the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.InitWithWriter(cmd.OutOrStdout(), cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
		ctx := logger.With(cmd.Context(), "command", "new")

		props, err := propsFromFlags(cmd)
		if err != nil {
			return err
		}

		service := category.NewService(logger.From(ctx), cfg.Category)
		c, err := service.Create(props, categoryID)
		if err != nil {
			return err
		}

		description := ""
		if d := c.Description(); d != nil {
			description = *d
		}
		logger.From(ctx).Info("resolved category",
			"id", c.ID(),
			"name", c.Name(),
			"description", description,
			"has_description", c.Description() != nil,
			"is_active", c.IsActive(),
			"created_at", c.CreatedAt().Format(time.RFC3339Nano),
		)
		return nil
	},
}

// propsFromFlags leaves optional properties nil unless their flag was set.
func propsFromFlags(cmd *cobra.Command) (category.Properties, error) {
	props := category.Properties{Name: categoryName}

	if cmd.Flags().Changed("description") {
		description := categoryDescription
		props.Description = &description
	}

	if cmd.Flags().Changed("inactive") {
		active := !categoryInactive
		props.IsActive = &active
	}

	if cmd.Flags().Changed("created-at") {
		createdAt, err := time.Parse(time.RFC3339, categoryCreatedAt)
		if err != nil {
			return category.Properties{}, fmt.Errorf("invalid --created-at: %w", err)
		}
		props.CreatedAt = &createdAt
	}

	return props, nil
}

func init() {
	newCmd.Flags().StringVar(&categoryName, "name", "", "Category name")
	newCmd.Flags().StringVar(&categoryDescription, "description", "", "Category description")
	newCmd.Flags().StringVar(&categoryID, "id", "", "Category id, generated when empty")
	newCmd.Flags().StringVar(&categoryCreatedAt, "created-at", "", "Creation time in RFC3339, now when empty")
	newCmd.Flags().BoolVar(&categoryInactive, "inactive", false, "Create the category inactive")
}
