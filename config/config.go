package config

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	DatabaseURL       string
	AdminPasswordHash string
	Port              string

	// SessionSecret is regenerated on every process start, so all
	// sessions and CSRF tokens are invalidated by a restart.
	SessionSecret []byte
)

// EnvFile is where the first-run setup persists the admin password hash.
var EnvFile = ".env"

func Init() error {
	if err := godotenv.Load(EnvFile); err != nil {
		logrus.Printf("no %s file loaded: %v", EnvFile, err)
	}

	var errs *multierror.Error

	DatabaseURL = os.Getenv("DB_URL")
	if DatabaseURL == "" {
		errs = multierror.Append(errs, fmt.Errorf("DB_URL not set"))
	}

	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = ":8080"
	}

	SessionSecret = make([]byte, 32)
	if _, err := rand.Read(SessionSecret); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to generate session secret: %w", err))
	}

	return errs.ErrorOrNil()
}

// FirstRun reports whether no admin password has been configured yet.
func FirstRun() bool {
	return AdminPasswordHash == ""
}

// PersistAdminPasswordHash writes the bcrypt hash to the env file. The
// server must be restarted before the new password takes effect.
func PersistAdminPasswordHash(hash string) error {
	env, err := godotenv.Read(EnvFile)
	if err != nil {
		env = map[string]string{}
	}
	env["ADMIN_PASSWORD_HASH"] = hash
	return godotenv.Write(env, EnvFile)
}
