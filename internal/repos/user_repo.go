package repos

import (
	"refind/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EnsureReporter returns the identity for a phone number, creating it on
// first login. Phone numbers are stored already normalized (digits only).
func (r *UserRepo) EnsureReporter(id, phone string) (*domain.Reporter, error) {
	var rep domain.Reporter
	if err := r.DB.Get(&rep, `SELECT id,phone FROM reporters WHERE phone=?`, phone); err == nil {
		return &rep, nil
	}
	if _, err := r.DB.Exec(`INSERT INTO reporters(id,phone) VALUES(?,?) ON CONFLICT(phone) DO NOTHING`, id, phone); err != nil {
		return nil, err
	}
	if err := r.DB.Get(&rep, `SELECT id,phone FROM reporters WHERE phone=?`, phone); err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *UserRepo) BindReporterSession(sid, reporterID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,reporter_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET reporter_id=excluded.reporter_id,last_seen=CURRENT_TIMESTAMP`, sid, reporterID)
	return err
}

func (r *UserRepo) BindAdminSession(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionReporter(sid string) (*domain.Reporter, error) {
	var rep domain.Reporter
	err := r.DB.Get(&rep, `
      SELECT rp.id,rp.phone
      FROM sessions s
      JOIN reporters rp ON rp.id=s.reporter_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *UserRepo) SessionAdmin(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.email,u.name,u.password_hash,u.role
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET reporter_id=NULL,user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
