package cartfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"shopfront/internal/domain/cart"
	"shopfront/internal/pkg/errs"
)

// Store persists the cart as a JSON file under a well-known path,
// scoped to one client profile. Every save completes synchronously
// before the mutating call returns, so a reload always sees the last
// accepted mutation. Writes go through a temp file and rename so a
// crash mid-write cannot leave a torn cart behind.
type Store struct {
	mu   sync.Mutex
	path string
}

type lineRecord struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errs.New("cart store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errs.Wrap(err, "create cart store directory")
	}
	return &Store{path: path}, nil
}

// Load returns the persisted cart, or an empty one when nothing has
// been saved yet. Malformed content is an error, not an empty cart:
// silently discarding a shopper's cart is worse than failing loud.
func (s *Store) Load() (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return cart.NewCart(), nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "read cart file")
	}

	var records []lineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Wrap(err, "decode cart file")
	}

	lines := make([]cart.Line, 0, len(records))
	for _, r := range records {
		price, err := cart.NewMoneyFromCents(r.UnitPriceCents)
		if err != nil {
			return nil, errs.Wrap(err, "cart file line price")
		}
		line, err := cart.NewLine(r.ProductID, r.Name, price, r.Quantity)
		if err != nil {
			return nil, errs.Wrap(err, "cart file line")
		}
		lines = append(lines, line)
	}
	return cart.ReconstructCart(lines)
}

func (s *Store) Save(c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := c.Lines()
	records := make([]lineRecord, len(lines))
	for i, l := range lines {
		records[i] = lineRecord{
			ProductID:      l.ProductID(),
			Name:           l.Name(),
			UnitPriceCents: l.UnitPrice().Cents(),
			Quantity:       l.Quantity(),
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errs.Wrap(err, "encode cart")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errs.Wrap(err, "write cart file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errs.Wrap(err, "replace cart file")
	}
	return nil
}
