// Package config provides environment-sourced configuration for the
// service. All database and admin credential values are required; the
// process refuses to start without them so a misconfigured deployment
// fails fast instead of serving an unguarded API.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// DBHost is the PostgreSQL server host.
	DBHost string
	// DBUser is the PostgreSQL user.
	DBUser string
	// DBPassword is the PostgreSQL password.
	DBPassword string
	// DBName is the database name.
	DBName string

	// AdminUsername and AdminPassword guard the login endpoint.
	AdminUsername string
	AdminPassword string
	// AdminToken is the static pre-shared token issued on login and
	// required by every mutating endpoint.
	AdminToken string
}

// DSN returns the lib/pq connection string for the configured database.
func (o *Options) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
		o.DBHost, o.DBUser, o.DBPassword, o.DBName)
}

// Parse reads configuration from environment variables. It returns an
// error naming every missing required variable so operators can fix a
// broken deployment in one pass.
func Parse() (*Options, error) {
	o := &Options{Addr: ":8080"}
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		o.Addr = addr
	}

	var missing []string
	require := func(name string, dst *string) {
		v := os.Getenv(name)
		if v == "" {
			missing = append(missing, name)
			return
		}
		*dst = v
	}

	require("DB_HOST", &o.DBHost)
	require("DB_USER", &o.DBUser)
	require("DB_PASSWORD", &o.DBPassword)
	require("DB_NAME", &o.DBName)
	require("ADMIN_USERNAME", &o.AdminUsername)
	require("ADMIN_PASSWORD", &o.AdminPassword)
	require("ADMIN_TOKEN", &o.AdminToken)

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return o, nil
}
