package database

import (
	"database/sql"
	"fmt"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

// sessionRepo keeps at most one row: the cached upstream login.
type sessionRepo struct {
	db dbConn
}

func newSessionRepo(db dbConn) contract.SessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Save(session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, token, expires_at, city_id)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			expires_at = excluded.expires_at,
			city_id = excluded.city_id
	`

	_, err := r.db.Exec(query, session.Token, session.ExpiresAt, session.CityID)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get() (*entity.Session, error) {
	session := &entity.Session{}
	query := `SELECT token, expires_at, city_id FROM sessions WHERE id = 1`

	err := r.db.QueryRow(query).Scan(&session.Token, &session.ExpiresAt, &session.CityID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}
