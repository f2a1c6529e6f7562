package repos

import (
	"database/sql"
	"errors"

	"refind/internal/domain"

	"github.com/jmoiron/sqlx"
)

const itemCols = `
  id, kind, title, description, location, category,
  reporter_contact, claim_code, item_id, owner_id, created_at`

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

func (r *ItemRepo) Insert(it domain.Item) error {
	_, err := r.db.Exec(`
	  INSERT INTO items(id, kind, title, description, location, category,
	                    reporter_contact, claim_code, item_id, owner_id)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, it.ID, it.Kind, it.Title, it.Description, it.Location, it.Category,
		it.ReporterContact, it.ClaimCode, it.ItemID, it.OwnerID)
	return err
}

// StampItemID copies the row's id into item_id after insert, the one field
// update a record ever receives.
func (r *ItemRepo) StampItemID(id string) error {
	_, err := r.db.Exec(`UPDATE items SET item_id=? WHERE id=?`, id, id)
	return err
}

// ListByKind is the only server-side predicate matching relies on; all
// scoring happens over the returned set.
func (r *ItemRepo) ListByKind(kind string) ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `SELECT `+itemCols+` FROM items WHERE kind=? ORDER BY created_at DESC, id`, kind)
	return out, err
}

func (r *ItemRepo) ListFoundByOwner(ownerID string) ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `
	  SELECT `+itemCols+` FROM items
	  WHERE kind='FOUND' AND owner_id=?
	  ORDER BY created_at DESC, id
	`, ownerID)
	return out, err
}

func (r *ItemRepo) GetByID(id string) (*domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `SELECT `+itemCols+` FROM items WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// FindFoundByCodeAndID looks up a FOUND record by its (claim_code, item_id)
// pair, falling back to a point lookup by primary id re-verified against kind
// and code. Code alone is never sufficient, and neither is the id.
func (r *ItemRepo) FindFoundByCodeAndID(code, id string) (*domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `
	  SELECT `+itemCols+` FROM items
	  WHERE kind='FOUND' AND claim_code=? AND item_id=?
	`, code, id)
	if err == nil {
		return &it, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	// Fallback: rows inserted before item_id stamping landed are still
	// claimable by primary id.
	err = r.db.Get(&it, `SELECT `+itemCols+` FROM items WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	if it.Kind != domain.KindFound || it.ClaimCode != code {
		return nil, sql.ErrNoRows
	}
	return &it, nil
}

// DeleteByID removes a record and reports whether a row actually went away.
// The delete is the single serialization point for concurrent claims: the
// caller that observes removed=false lost the race.
func (r *ItemRepo) DeleteByID(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM items WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Counts feeds the admin dashboard.
type Counts struct {
	Lost  int `db:"lost"`
	Found int `db:"found"`
}

func (r *ItemRepo) CountByKind() (Counts, error) {
	var c Counts
	err := r.db.Get(&c, `
	  SELECT
	    COUNT(CASE WHEN kind='LOST'  THEN 1 END) AS lost,
	    COUNT(CASE WHEN kind='FOUND' THEN 1 END) AS found
	  FROM items
	`)
	return c, err
}

func (r *ItemRepo) ListRecent(limit int) ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `SELECT `+itemCols+` FROM items ORDER BY created_at DESC, id LIMIT ?`, limit)
	return out, err
}
