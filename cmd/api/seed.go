package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"dental-lab/internal/adapters/source/filesource"
	"dental-lab/internal/adapters/source/sqlsource"
	"dental-lab/internal/config"
	"dental-lab/internal/domain/doctors"
	"dental-lab/internal/domain/patients"
	"dental-lab/internal/domain/practices"

	"github.com/spf13/cobra"
)

func seedCmd(envFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in sample data to a seed directory or database",
	}

	// seed files
	filesCmd := &cobra.Command{
		Use:   "files <dir>",
		Short: "Write doctors/practices/patients YAML files usable as SEED_DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSeedFiles(args[0])
		},
	}
	cmd.AddCommand(filesCmd)

	// seed db
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Create the tables and load the sample data into DB_DSN",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFile(*envFile)
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return fmt.Errorf("DB_DSN is required")
			}
			if err := loadSeedDB(cmd.Context(), cfg.DBDriver, cfg.DBDSN); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded sample data into %s database.\n", cfg.DBDriver)
			return nil
		},
	}
	cmd.AddCommand(dbCmd)

	return cmd
}

func writeSeedFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create seed dir: %w", err)
	}
	if err := filesource.Write(filepath.Join(dir, sqlsource.TableDoctors+".yaml"), doctors.Seed()); err != nil {
		return err
	}
	if err := filesource.Write(filepath.Join(dir, sqlsource.TablePractices+".yaml"), practices.Seed()); err != nil {
		return err
	}
	return filesource.Write(filepath.Join(dir, sqlsource.TablePatients+".yaml"), patients.Seed())
}

func loadSeedDB(ctx context.Context, driver, dsn string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := sqlsource.Open(driver, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlsource.EnsureSchema(ctx, db, sqlsource.TableDoctors, sqlsource.TablePractices, sqlsource.TablePatients); err != nil {
		return err
	}
	if err := sqlsource.Load(ctx, db, driver, sqlsource.TableDoctors, doctors.Seed()); err != nil {
		return err
	}
	if err := sqlsource.Load(ctx, db, driver, sqlsource.TablePractices, practices.Seed()); err != nil {
		return err
	}
	return sqlsource.Load(ctx, db, driver, sqlsource.TablePatients, patients.Seed())
}
