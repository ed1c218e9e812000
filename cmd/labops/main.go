// cmd/labops/main.go
//
// labops is the operational CLI: schema migration and development seed data.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/futurelabs/labtrack/internal/config"
	"github.com/futurelabs/labtrack/internal/model"
	"github.com/futurelabs/labtrack/internal/repository"
	"github.com/futurelabs/labtrack/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(log)

	rootCmd := &cobra.Command{
		Use:   "labops",
		Short: "Operational tooling for the lab collaboration tracker",
	}
	rootCmd.AddCommand(migrateCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			if err := model.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrating schema: %w", err)
			}
			slog.Info("schema migrated")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with development data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			if err := model.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrating schema: %w", err)
			}
			return runSeed(cmd.Context(), db, rand.New(rand.NewSource(seed)))
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for generated activities and costs")
	return cmd
}

func openDatabase() (*gorm.DB, error) {
	cfg := config.Load()
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

// runSeed creates a small but representative data set. Activities go
// through the service layer so the support summary table stays consistent
// with what the API would have produced.
func runSeed(ctx context.Context, db *gorm.DB, rng *rand.Rand) error {
	labRepo := repository.NewLabRepository(db)
	labs := service.NewLabService(labRepo)
	projects := service.NewProjectService(repository.NewProjectRepository(db), labRepo)
	personnel := service.NewPersonnelService(repository.NewPersonnelRepository(db), labRepo)
	activities := service.NewActivityService(repository.NewActivityRepository(db))
	costs := service.NewCostService(repository.NewCostRepository(db))

	labInputs := []service.CreateLabInput{
		{Code: "AFL", Name: "Advanced Fabrication Lab", Description: "Prototyping and fabrication"},
		{Code: "ITER", Name: "Integration Test Lab", Description: "System integration and verification"},
		{Code: "MATS", Name: "Materials Lab", Description: "Materials analysis and characterization"},
		{Code: "SWQA", Name: "Software Quality Lab", Description: "Software verification"},
		{Code: "SALES", Name: "Sales Engineering", Description: "Customer-facing technical support"},
	}
	labIDs := make([]uint, 0, len(labInputs))
	for _, input := range labInputs {
		lab, err := labs.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("seeding lab %s: %w", input.Code, err)
		}
		labIDs = append(labIDs, lab.ID)
	}
	slog.Info("seeded labs", "count", len(labIDs))

	personInputs := []service.CreatePersonnelInput{
		{EmployeeID: "EMP001", Name: "Dana Whitfield", Email: "dana.whitfield@example.com", Position: strPtr("Lab Manager"), LabIDs: uintSlicePtr(labIDs[0])},
		{EmployeeID: "EMP002", Name: "Marcus Okafor", Email: "marcus.okafor@example.com", Position: strPtr("Senior Engineer"), LabIDs: uintSlicePtr(labIDs[0], labIDs[1])},
		{EmployeeID: "EMP003", Name: "Priya Raman", Email: "priya.raman@example.com", Position: strPtr("Test Engineer"), LabIDs: uintSlicePtr(labIDs[1])},
		{EmployeeID: "EMP004", Name: "Jonas Keller", Email: "jonas.keller@example.com", Position: strPtr("Materials Scientist"), LabIDs: uintSlicePtr(labIDs[2])},
		{EmployeeID: "EMP005", Name: "Aiko Tanaka", Email: "aiko.tanaka@example.com", Position: strPtr("QA Lead"), LabIDs: uintSlicePtr(labIDs[3])},
	}
	personIDs := make([]uint, 0, len(personInputs))
	for _, input := range personInputs {
		person, err := personnel.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("seeding personnel %s: %w", input.EmployeeID, err)
		}
		personIDs = append(personIDs, person.ID)
	}
	slog.Info("seeded personnel", "count", len(personIDs))

	today := time.Now().UTC()
	projectInputs := []service.CreateProjectInput{
		{
			Code: "PRJ001", Name: "Next-Gen Sensor Platform", Status: "active",
			StartDate: today.AddDate(0, -3, 0).Format(time.DateOnly),
			LeadLabID: labIDs[0], LabIDs: uintSlicePtr(labIDs[0], labIDs[1], labIDs[2]),
		},
		{
			Code: "PRJ002", Name: "Thermal Coating Study", Status: "active",
			StartDate: today.AddDate(0, -2, 0).Format(time.DateOnly),
			LeadLabID: labIDs[2], LabIDs: uintSlicePtr(labIDs[2]),
		},
		{
			Code: "PRJ003", Name: "Release Certification", Status: "completed",
			StartDate: today.AddDate(0, -6, 0).Format(time.DateOnly),
			EndDate:   today.AddDate(0, -1, 0).Format(time.DateOnly),
			LeadLabID: labIDs[3], LabIDs: uintSlicePtr(labIDs[1], labIDs[3]),
		},
		{
			Code: "UNKNOWN", Name: "Unclassified Work", Status: "unknown",
			LeadLabID: labIDs[0],
		},
	}
	projectIDs := make([]uint, 0, len(projectInputs))
	for _, input := range projectInputs {
		project, err := projects.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("seeding project %s: %w", input.Code, err)
		}
		projectIDs = append(projectIDs, project.ID)
	}
	slog.Info("seeded projects", "count", len(projectIDs))

	// Activities spread over the trailing 90 days. Roughly a quarter are
	// support entries against a different lab.
	activityCount := 0
	for i := 0; i < 200; i++ {
		date := today.AddDate(0, 0, -rng.Intn(90))
		labIdx := rng.Intn(len(labIDs))
		input := service.CreateActivityInput{
			PersonnelID:  personIDs[rng.Intn(len(personIDs))],
			LabID:        labIDs[labIdx],
			ActivityDate: date.Format(time.DateOnly),
			Hours:        float64(rng.Intn(16)+1) / 2.0,
			ActivityType: "own",
		}
		if rng.Intn(2) == 0 {
			input.ProjectID = &projectIDs[rng.Intn(len(projectIDs))]
		}
		if rng.Intn(4) == 0 {
			supportedIdx := (labIdx + 1 + rng.Intn(len(labIDs)-1)) % len(labIDs)
			input.ActivityType = "support"
			input.SupportedLabID = &labIDs[supportedIdx]
		}
		if _, err := activities.Create(ctx, input); err != nil {
			return fmt.Errorf("seeding activity %d: %w", i, err)
		}
		activityCount++
	}
	slog.Info("seeded activities", "count", activityCount)

	categories := []string{"equipment", "materials", "travel", "services"}
	costCount := 0
	for i := 0; i < 50; i++ {
		date := today.AddDate(0, 0, -rng.Intn(90))
		input := service.CreateCostInput{
			LabID:    labIDs[rng.Intn(len(labIDs))],
			CostDate: date.Format(time.DateOnly),
			Amount:   float64(rng.Intn(500000)) / 100.0,
			CostType: "actual",
			Category: categories[rng.Intn(len(categories))],
		}
		if rng.Intn(5) == 0 {
			input.CostType = "budget"
		}
		if rng.Intn(2) == 0 {
			input.ProjectID = &projectIDs[rng.Intn(len(projectIDs))]
		}
		if _, err := costs.Create(ctx, input); err != nil {
			return fmt.Errorf("seeding cost %d: %w", i, err)
		}
		costCount++
	}
	slog.Info("seeded costs", "count", costCount)

	return nil
}

func strPtr(s string) *string { return &s }

func uintSlicePtr(ids ...uint) *[]uint { return &ids }
