package migration

import (
	"errors"
	"fmt"
	"path"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func finish(err error) {
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		panic(err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("No migrations to run")
	}
}

// MigrateCommand builds the migrate up / down command tree.
func MigrateCommand(dsn string) *cobra.Command {
	sourceURL := "file://migrations"

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "migrate up all versions",
		Run: func(cmd *cobra.Command, args []string) {
			finish(newMigrate(sourceURL, dsn).Up())
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "migrate down one version",
		Run: func(cmd *cobra.Command, args []string) {
			finish(newMigrate(sourceURL, dsn).Steps(-1))
		},
	}

	forceCmd := &cobra.Command{
		Use:   "force [version]",
		Short: "force set the migration version, without running migrations",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var version int
			_, err := fmt.Sscanf(args[0], "%d", &version)
			if err != nil {
				panic(err)
			}
			finish(newMigrate(sourceURL, dsn).Force(version))
		},
	}

	rootCmd := &cobra.Command{
		Use: "migrate",
	}
	rootCmd.AddCommand(upCmd, downCmd, forceCmd)
	return rootCmd
}

// MigrateUpForTesting migrates the test database up to the latest
// version, using the migrations directory under rootDir.
func MigrateUpForTesting(rootDir string, dsn string) {
	sourceURL := "file://" + path.Join(rootDir, "migrations")
	finish(newMigrate(sourceURL, dsn).Up())
}
