package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port              int
	DatabaseURL       string
	AdminEmail        string
	AdminPasswordHash string
	SessionTokenSalt  string
	SubjectLimit      int
	ListLimit         int
	ExportLimit       int
	RosterFile        string
}

// Safety caps against unbounded result sets; overridable via flags.
const (
	DefaultSubjectLimit = 1000
	DefaultListLimit    = 1000
	DefaultExportLimit  = 10000
)

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("canvass", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminEmail, "admin-email", "", "Admin login email (prefer env)")
	fs.StringVar(&cfg.AdminPasswordHash, "admin-password-hash", "", "Admin bcrypt password hash (prefer env)")
	fs.StringVar(&cfg.SessionTokenSalt, "session-salt", "", "Session token salt (prefer env)")

	// Result-set caps
	fs.IntVar(&cfg.SubjectLimit, "subject-limit", DefaultSubjectLimit, "Max subjects returned per destination lookup")
	fs.IntVar(&cfg.ListLimit, "list-limit", DefaultListLimit, "Max responses returned by the admin listing")
	fs.IntVar(&cfg.ExportLimit, "export-limit", DefaultExportLimit, "Max responses included in an export")

	// One-shot roster import mode
	fs.StringVar(&cfg.RosterFile, "import", "", "Replace the roster from this xlsx/csv file and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Secrets - MUST be provided
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	}
	if cfg.AdminEmail == "" {
		return Config{}, errors.New("ADMIN_EMAIL required")
	}

	if cfg.AdminPasswordHash == "" {
		cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	}
	if cfg.AdminPasswordHash == "" {
		return Config{}, errors.New("ADMIN_PASSWORD_HASH required")
	}

	if cfg.SessionTokenSalt == "" {
		cfg.SessionTokenSalt = os.Getenv("SESSION_TOKEN_SALT")
	}
	if cfg.SessionTokenSalt == "" {
		return Config{}, errors.New("SESSION_TOKEN_SALT required")
	}

	return cfg, nil
}
