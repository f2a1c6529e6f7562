package repos_test

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"refind/internal/domain"
	"refind/internal/repos"
)

func testRepo(t *testing.T) *repos.ItemRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewItemRepo(db)
}

func TestItemInsertStampGet(t *testing.T) {
	r := testRepo(t)

	it := domain.Item{
		ID: "f-1", Kind: domain.KindFound, Title: "Phone", Location: "Cafe",
		Category: "electronics", ClaimCode: "111111", ReporterContact: "5550001111",
		OwnerID: "rep-1",
	}
	if err := r.Insert(it); err != nil {
		t.Fatal(err)
	}
	if err := r.StampItemID("f-1"); err != nil {
		t.Fatal(err)
	}

	got, err := r.GetByID("f-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ItemID != "f-1" || got.ClaimCode != "111111" || got.CreatedAt == "" {
		t.Fatalf("bad stored record: %+v", got)
	}
}

func TestItemListByKind(t *testing.T) {
	r := testRepo(t)

	for _, it := range []domain.Item{
		{ID: "f-1", Kind: domain.KindFound, Title: "A", Location: "x", Category: "other", ClaimCode: "111111"},
		{ID: "f-2", Kind: domain.KindFound, Title: "B", Location: "x", Category: "other", ClaimCode: "222222", OwnerID: "rep-2"},
		{ID: "l-1", Kind: domain.KindLost, Title: "C", Location: "x", Category: "other"},
	} {
		if err := r.Insert(it); err != nil {
			t.Fatal(err)
		}
	}

	found, err := r.ListByKind(domain.KindFound)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("want 2 FOUND records, got %+v", found)
	}
	for _, it := range found {
		if it.Kind != domain.KindFound {
			t.Fatalf("kind filter leaked: %+v", it)
		}
	}

	mine, err := r.ListFoundByOwner("rep-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].ID != "f-2" {
		t.Fatalf("owner scope wrong: %+v", mine)
	}
}

func TestItemDeleteObservable(t *testing.T) {
	r := testRepo(t)

	it := domain.Item{ID: "f-1", Kind: domain.KindFound, Title: "A", Location: "x", Category: "other", ClaimCode: "111111"}
	if err := r.Insert(it); err != nil {
		t.Fatal(err)
	}

	removed, err := r.DeleteByID("f-1")
	if err != nil || !removed {
		t.Fatalf("first delete should remove the row: removed=%v err=%v", removed, err)
	}
	// Delete of an already-deleted id is a visible no-op, not an error.
	removed, err = r.DeleteByID("f-1")
	if err != nil || removed {
		t.Fatalf("second delete should be a no-op: removed=%v err=%v", removed, err)
	}
	if _, err := r.GetByID("f-1"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("retired id must not resolve, got %v", err)
	}
}

func TestFindFoundByCodeAndID(t *testing.T) {
	r := testRepo(t)

	stamped := domain.Item{ID: "f-1", Kind: domain.KindFound, Title: "A", Location: "x", Category: "other", ClaimCode: "111111", ItemID: "f-1"}
	legacy := domain.Item{ID: "f-2", Kind: domain.KindFound, Title: "B", Location: "x", Category: "other", ClaimCode: "222222"}
	lost := domain.Item{ID: "l-1", Kind: domain.KindLost, Title: "C", Location: "x", Category: "other"}
	for _, it := range []domain.Item{stamped, legacy, lost} {
		if err := r.Insert(it); err != nil {
			t.Fatal(err)
		}
	}

	if got, err := r.FindFoundByCodeAndID("111111", "f-1"); err != nil || got.ID != "f-1" {
		t.Fatalf("pair lookup failed: %+v %v", got, err)
	}
	// Unstamped row resolves through the id fallback, still code-checked.
	if got, err := r.FindFoundByCodeAndID("222222", "f-2"); err != nil || got.ID != "f-2" {
		t.Fatalf("fallback lookup failed: %+v %v", got, err)
	}
	if _, err := r.FindFoundByCodeAndID("999999", "f-2"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("fallback must verify the code, got %v", err)
	}
	if _, err := r.FindFoundByCodeAndID("111111", "f-2"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("mixed pair must not resolve, got %v", err)
	}
	if _, err := r.FindFoundByCodeAndID("", "l-1"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("LOST record must not satisfy a claim lookup, got %v", err)
	}
}
