package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	migrationsDir string
	down          bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить (или откатить) схему базы данных",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		return runMigrate(cmd.Context(), env)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&migrationsDir, "migrations-dir", "./migrations", "Каталог с SQL миграциями")
	migrateCmd.Flags().BoolVar(&down, "down", false, "Откатить схему")
}

func runMigrate(ctx context.Context, env *environment) error {
	suffix := "up"
	if down {
		suffix = "down"
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*."+suffix+".sql"))
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no *.%s.sql files in %s", suffix, migrationsDir)
	}

	// Откат идет в обратном порядке
	if down {
		for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
			files[i], files[j] = files[j], files[i]
		}
	}

	for _, file := range files {
		script, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		if _, err := env.db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to apply %s: %w", file, err)
		}
		env.log.Info("Applied migration %s", filepath.Base(file))
	}

	return nil
}
