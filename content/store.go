package content

import (
	"embed"
	"io/fs"
	"math/rand/v2"
)

//go:embed data/*
var dataFS embed.FS

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// Store hands out uniformly random entries from the loaded banks.
// It is read-only after construction and safe for concurrent use.
type Store struct {
	maxims []string
	quotes []string
	whois  []string
	quiz   []QuizQuestion
}

// NewStore loads the embedded data files.
func NewStore() (*Store, error) {
	return Load(dataFS)
}

// Load builds a Store from any filesystem carrying a data/ directory,
// keeping the embedded layout swappable in tests.
func Load(f fs.FS) (*Store, error) {
	maxims, err := loadLines(f, "data/maxims.txt")
	if err != nil {
		return nil, err
	}
	quotes, err := loadLines(f, "data/quotes.txt")
	if err != nil {
		return nil, err
	}
	whois, err := loadLines(f, "data/whois.txt")
	if err != nil {
		return nil, err
	}
	quiz, err := loadQuiz(f, "data/quiz.json")
	if err != nil {
		return nil, err
	}
	return &Store{maxims: maxims, quotes: quotes, whois: whois, quiz: quiz}, nil
}

func (s *Store) Maxim() string {
	return s.maxims[rand.IntN(len(s.maxims))]
}

func (s *Store) Quote() string {
	return s.quotes[rand.IntN(len(s.quotes))]
}

func (s *Store) WhoIs() string {
	return s.whois[rand.IntN(len(s.whois))]
}

func (s *Store) Quiz() QuizQuestion {
	return s.quiz[rand.IntN(len(s.quiz))]
}
