package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pontopro/backend/internal/models"
)

// DemoAdminID identifies the profile served when a signed-in user has no row
const DemoAdminID = "demo-admin"

// Tokens without an exp claim stay blacklisted this long
const defaultRevocationTTL = 24 * time.Hour

type ProfileService struct {
	db                *sql.DB
	redis             *redis.Client
	demoAdminFallback bool
	now               func() time.Time
}

func NewProfileService(db *sql.DB, redisClient *redis.Client, demoAdminFallback bool) *ProfileService {
	return &ProfileService{
		db:                db,
		redis:             redisClient,
		demoAdminFallback: demoAdminFallback,
		now:               time.Now,
	}
}

// DemoAdminProfile is the administrator shown on demonstration installs
func DemoAdminProfile() *models.User {
	return &models.User{
		ID:     DemoAdminID,
		Nome:   "Gestor Demo",
		Login:  "admin@demo.com",
		Perfil: models.RoleAdmin,
		Ativo:  true,
	}
}

// Load reads the profile of the signed-in user
func (s *ProfileService) Load(ctx context.Context, session *models.Session) (*models.User, error) {
	if session == nil || session.UserID == "" {
		return nil, ErrNotFound
	}

	var u models.User
	var nome, login sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, nome, login, perfil, ativo, criado_em
		FROM usuarios
		WHERE id = $1`, session.UserID).Scan(&u.ID, &nome, &login, &u.Perfil, &u.Ativo, &u.CriadoEm)
	if errors.Is(err, sql.ErrNoRows) {
		if s.demoAdminFallback {
			log.Printf("[AUTH] No profile for %s, using demo administrator", session.UserID)
			return DemoAdminProfile(), nil
		}
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", session.UserID, err)
	}
	u.Nome = nome.String
	u.Login = login.String
	return &u, nil
}

// Revoke blacklists the session token until it expires
func (s *ProfileService) Revoke(ctx context.Context, session *models.Session) error {
	if s.redis == nil || session == nil || session.AccessToken == "" {
		return nil
	}

	ttl := defaultRevocationTTL
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", session.AccessToken)
	if err := s.redis.Set(ctx, key, "1", ttl).Err(); err != nil {
		log.Printf("[AUTH] Failed to blacklist token: %v", err)
		return err
	}
	log.Printf("[AUTH] Session revoked for user %s", session.UserID)
	return nil
}

// IsRevoked reports whether the token was blacklisted by a logout
func (s *ProfileService) IsRevoked(ctx context.Context, token string) (bool, error) {
	if s.redis == nil {
		return false, nil
	}
	n, err := s.redis.Exists(ctx, fmt.Sprintf("blacklist:%s", token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
