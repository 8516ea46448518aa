package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/fantasy-draft/internal/app"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

var errUsage = errors.New("usage")

// defaultMigrationDirs are tried after MIGRATIONS_DIR.
var defaultMigrationDirs = []string{"./db/migrations", "/app/db/migrations"}

func main() {
	_ = godotenv.Load()
	logger := logging.NewConsole(logging.LevelInfo, os.Stderr).Named("migration")

	err := run(os.Args[1:], logger, os.Stdout)
	_ = logger.Sync()
	switch {
	case errors.Is(err, errUsage):
		printUsage(os.Stderr)
		os.Exit(2)
	case err != nil:
		logger.Error("migration command failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(args []string, logger *logging.Logger, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return fmt.Errorf("DB_URL is required")
	}
	disableBinary, err := strconv.ParseBool(envOr("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	dir, err := findMigrationsDir(os.Getenv("MIGRATIONS_DIR"))
	if err != nil {
		return err
	}
	source := "file://" + filepath.ToSlash(dir)

	m, err := migrate.New(source, app.MigrationDatabaseURL(dbURL, disableBinary))
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			logger.Warn("close migrator failed", "error", err)
		}
	}()

	logger = logger.With("source", source)
	cmd, rest := strings.ToLower(strings.TrimSpace(args[0])), args[1:]
	switch cmd {
	case "up":
		return applied(logger, "draft schema is up to date", m.Up())
	case "down":
		steps, err := parseSteps(rest)
		if err != nil {
			return err
		}
		return applied(logger.With("steps", steps), "rolled back", m.Steps(-steps))
	case "goto":
		if len(rest) == 0 {
			return fmt.Errorf("goto needs a target version")
		}
		target, err := strconv.ParseUint(strings.TrimSpace(rest[0]), 10, 32)
		if err != nil {
			return fmt.Errorf("invalid target version %q: %w", rest[0], err)
		}
		return applied(logger.With("version", target), "migrated", m.Migrate(uint(target)))
	case "force":
		if len(rest) == 0 {
			return fmt.Errorf("force needs a version")
		}
		version, err := strconv.Atoi(strings.TrimSpace(rest[0]))
		if err != nil || version < -1 {
			return fmt.Errorf("invalid version %q", rest[0])
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		logger.Info("version forced", "version", version)
		return nil
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Fprintln(out, "version: none")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Fprintf(out, "version: %d dirty: %t\n", version, dirty)
		return nil
	default:
		return errUsage
	}
}

func applied(logger *logging.Logger, msg string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info(msg)
	return nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("down steps must be a positive integer, got %q", args[0])
	}
	return steps, nil
}

func findMigrationsDir(override string) (string, error) {
	candidates := append([]string{strings.TrimSpace(override)}, defaultMigrationDirs...)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("no migrations directory found in %s", strings.Join(candidates[1:], ", "))
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func printUsage(w io.Writer) {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "usage: %s up | down [n] | goto <version> | force <version> | version\n", name)
}
