package repository

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
)

var defaultQuotes = []string{
	"not every day has to be productive. some days are for feeling.",
	"your emotions are valid, embrace them.",
	"take it one breath at a time.",
	"feeling is healing.",
	"it's okay to not be okay.",
	"your journey is uniquely yours.",
	"emotions are like waves, let them flow.",
	"be gentle with yourself today.",
	"every feeling is a teacher.",
	"pause, breathe, feel.",
	"your feelings matter, take time to understand them.",
	"self-reflection is an act of self-love.",
	"today is a new beginning.",
	"listen to your heart, it knows the way.",
	"embrace the present moment.",
}

// QuotesRepository serves motivational quotes. Added quotes live until the process exits.
type QuotesRepository struct {
	mu     sync.RWMutex
	quotes []string
}

func NewQuotesRepo() *QuotesRepository {
	return &QuotesRepository{
		quotes: slices.Clone(defaultQuotes),
	}
}

func (qr *QuotesRepository) Random() string {
	qr.mu.RLock()
	defer qr.mu.RUnlock()
	return qr.quotes[rand.IntN(len(qr.quotes))]
}

// Add appends quote. Blank quotes are ignored.
func (qr *QuotesRepository) Add(quote string) bool {
	quote = strings.TrimSpace(quote)
	if quote == "" {
		return false
	}
	qr.mu.Lock()
	defer qr.mu.Unlock()
	qr.quotes = append(qr.quotes, quote)
	return true
}

func (qr *QuotesRepository) All() []string {
	qr.mu.RLock()
	defer qr.mu.RUnlock()
	return slices.Clone(qr.quotes)
}
