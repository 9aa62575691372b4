package service

import (
	"database/sql"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/database"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns application and schema version information.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	var dbVersion string
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version_id), 0) FROM goose_db_version").Scan(&dbVersion); err != nil {
		dbVersion = "unknown"
	}

	return model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  dbVersion,
		Features: map[string]bool{
			"fallback_simulation": true,
			"cache_encryption":    true,
		},
	}, nil
}
