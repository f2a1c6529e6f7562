package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Ensure the moderation account exists (idempotent; safe to run every start)
	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Item reports, both kinds in one table (single collection, like the store
-- this replaces). claim_code is set iff kind = 'FOUND'; item_id is stamped
-- with the row's own id right after insert and is what claim forms ask for.
CREATE TABLE IF NOT EXISTS items(
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL CHECK (kind IN ('LOST','FOUND')),
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('electronics','documents','clothing','accessories','other')),
  reporter_contact TEXT NOT NULL DEFAULT '',
  claim_code TEXT NOT NULL DEFAULT '',
  item_id TEXT NOT NULL DEFAULT '',
  owner_id TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  CHECK ((kind = 'FOUND') = (claim_code <> ''))
);
CREATE INDEX IF NOT EXISTS idx_items_kind       ON items(kind);
CREATE INDEX IF NOT EXISTS idx_items_owner      ON items(owner_id);
CREATE INDEX IF NOT EXISTS idx_items_claim_pair ON items(claim_code, item_id);

-- Phone-login identities
CREATE TABLE IF NOT EXISTS reporters(
  id TEXT PRIMARY KEY,
  phone TEXT NOT NULL UNIQUE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Admin accounts
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Sessions carry either a reporter (phone login) or an admin user
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  reporter_id TEXT NULL REFERENCES reporters(id) ON DELETE SET NULL,
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_reporter ON sessions(reporter_id);
CREATE INDEX IF NOT EXISTS idx_sessions_user     ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedAdmin ensures one ADMIN exists (idempotent).
func seedAdmin(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE role='ADMIN'`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting default admin account")
	h, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,email,name,password_hash,role)
		VALUES('u-admin','admin@refind.test','Admin',?,'ADMIN')
		ON CONFLICT(email) DO NOTHING
	`, string(h))
	return err
}
