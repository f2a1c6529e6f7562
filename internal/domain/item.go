package domain

// Item kinds. A FOUND record carries a claim code and can be retired; a LOST
// record is a standing report and is never deleted by the engine.
const (
	KindLost  = "LOST"
	KindFound = "FOUND"
)

var Categories = []string{"electronics", "documents", "clothing", "accessories", "other"}

type Item struct {
	ID              string `db:"id"`
	Kind            string `db:"kind"`
	Title           string `db:"title"`
	Description     string `db:"description"`
	Location        string `db:"location"`
	Category        string `db:"category"`
	ReporterContact string `db:"reporter_contact"`
	ClaimCode       string `db:"claim_code"`
	ItemID          string `db:"item_id"`
	OwnerID         string `db:"owner_id"`
	CreatedAt       string `db:"created_at"`
}

// Match is one ranked candidate surfaced to a lost-item reporter. The claim
// code, item id and reporter contact ride along for display.
type Match struct {
	Item
	Score float64
}
