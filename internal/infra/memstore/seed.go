package memstore

import (
	"log/slog"
	"time"

	"hotel-admin/internal/domain/operator"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/password"
)

// SeedAdmin registers the SEED_ADMIN_* operator so an empty memory store can still be logged into.
func (s *Store) SeedAdmin(cfg config.SeedConfig, cost ...int) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Warn("memory store has no operators; set SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD to log in")
		return nil
	}

	creds, err := operator.NewCredentials(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(creds.Password(), cost...)
	if err != nil {
		return err
	}

	s.AddOperator(operator.NewOperator(creds.Email(), hash, operator.RoleAdmin, time.Now()))
	slog.Info("seeded admin operator", "email", creds.Email().Value())
	return nil
}
