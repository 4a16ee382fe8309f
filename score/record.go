package score

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/racer796/parameter"
)

// Record is one saved result
type Record struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	CreatedAt int64  `json:"created_at"` // unix seconds
}

// Store keeps results in memory, ranked by score
type Store struct {
	mu      sync.RWMutex
	records []Record
	now     func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add inserts a result and returns its 1-based rank
// Equal scores keep submission order
func (s *Store) Add(name string, score int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Record{Name: name, Score: score, CreatedAt: s.now().Unix()}
	i, _ := slices.BinarySearchFunc(s.records, r, func(e, t Record) int {
		if e.Score >= t.Score {
			return -1
		}
		return 1
	})
	s.records = slices.Insert(s.records, i, r)
	return i + 1
}

// Top returns up to n best results
func (s *Store) Top(n int) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records[:min(n, len(s.records))])
}

// Len returns the number of stored results
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// CleanName trims a player name and cuts it to NicknameMaxLength runes
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > parameter.NicknameMaxLength {
		name = string([]rune(name)[:parameter.NicknameMaxLength])
	}
	return name
}

// rankOrder sorts records best first, oldest first on ties
func rankOrder(a, b Record) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.CreatedAt, b.CreatedAt)
}
