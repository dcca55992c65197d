package postgre

import (
	"database/sql"
	"fmt"

	"serava-assistant/internal/auth/repository"
	"serava-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed CredentialRepository.
func New(db *sql.DB, l log.Logger) repository.CredentialRepository {
	if db == nil {
		panic("auth/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/postgre.%s", method)
}
