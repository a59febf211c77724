package main

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		log.Fatal("DB_URL is required")
	}

	migrationsDir, err := resolveMigrationsDir()
	if err != nil {
		log.Fatalf("resolve migrations dir: %v", err)
	}

	sourceURL := "file://" + filepath.ToSlash(migrationsDir)
	m, err := migrate.New(sourceURL, normalizeDBURL(dbURL))
	if err != nil {
		log.Fatalf("create migrator: %v", err)
	}
	defer closeMigrator(m)

	command := strings.ToLower(strings.TrimSpace(os.Args[1]))
	if err := run(m, command, os.Args[2:], sourceURL); err != nil {
		log.Fatal(err)
	}
}

func run(m *migrate.Migrate, command string, args []string, sourceURL string) error {
	switch command {
	case "up":
		return runUp(m, sourceURL)
	case "down":
		return runDown(m, args)
	case "version":
		return runVersion(m)
	case "force":
		return runForce(m, args)
	case "goto", "migrate":
		return runGoto(m, args)
	default:
		printUsage()
		os.Exit(2)
		return nil
	}
}

func runUp(m *migrate.Migrate, sourceURL string) error {
	if err := tolerateNoChange(m.Up()); err != nil {
		return err
	}
	log.Printf("migrations applied (source=%s)", sourceURL)
	return nil
}

func runDown(m *migrate.Migrate, args []string) error {
	steps := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid down steps %q: %w", args[0], err)
		}
		if parsed <= 0 {
			return fmt.Errorf("down steps must be > 0")
		}
		steps = parsed
	}

	if err := tolerateNoChange(m.Steps(-steps)); err != nil {
		return err
	}
	log.Printf("rolled back %d migration(s)", steps)
	return nil
}

func runVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("version: none")
		fmt.Println("dirty: false")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}

	fmt.Printf("version: %d\n", version)
	fmt.Printf("dirty: %t\n", dirty)
	return nil
}

func runForce(m *migrate.Migrate, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("force requires a version argument")
	}

	value, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	if value < 0 {
		return fmt.Errorf("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return fmt.Errorf("version is too large for this platform")
	}

	if err := m.Force(int(value)); err != nil {
		return fmt.Errorf("force version %d: %w", value, err)
	}
	log.Printf("forced version to %d", value)
	return nil
}

func runGoto(m *migrate.Migrate, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("goto requires a target version argument")
	}

	target, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid target version %q: %w", args[0], err)
	}

	if err := tolerateNoChange(m.Migrate(uint(target))); err != nil {
		return err
	}
	log.Printf("migrated to version %d", target)
	return nil
}

func tolerateNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("close migration source: %v", srcErr)
	}
	if dbErr != nil {
		log.Printf("close migration db: %v", dbErr)
	}
}

// resolveMigrationsDir checks the env overrides first, then the local and
// container default paths.
func resolveMigrationsDir() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")),
		"./db/migrations",
		"/app/db/migrations",
	}

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

	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, MIGRATIONS_PATH, ./db/migrations, /app/db/migrations)")
}

func normalizeDBURL(raw string) string {
	if !envBool("DB_DISABLE_PREPARED_BINARY_RESULT") {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func envBool(key string) bool {
	switch strings.TrimSpace(strings.ToLower(os.Getenv(key))) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down|version|force|goto> [args]\n", prog)
	fmt.Fprintln(os.Stderr, "examples:")
	for _, example := range []string{"up", "down 1", "version", "force 2", "goto 2"} {
		fmt.Fprintf(os.Stderr, "  %s %s\n", prog, example)
	}
}
