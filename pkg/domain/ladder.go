package domain

import (
	"time"

	"github.com/google/uuid"
)

// LadderID uniquely identifies a stored ladder request.
type LadderID uuid.UUID

// String returns the canonical UUID text.
func (id LadderID) String() string {
	return uuid.UUID(id).String()
}

// LadderStatus represents the lifecycle state of a ladder request.
type LadderStatus string

const (
	// LadderStatusPending indicates the request waits for the worker.
	LadderStatusPending LadderStatus = "PENDING"
	// LadderStatusCompleted indicates the search finished; Result.Found tells
	// whether a ladder exists.
	LadderStatusCompleted LadderStatus = "COMPLETED"
	// LadderStatusFailed indicates the search kept failing until attempts ran out.
	LadderStatusFailed LadderStatus = "FAILED"
)

// Valid reports whether s is one of the known statuses.
func (s LadderStatus) Valid() bool {
	switch s {
	case LadderStatusPending, LadderStatusCompleted, LadderStatusFailed:
		return true
	default:
		return false
	}
}

// Solution is the outcome of a single search.
type Solution struct {
	Start  string   `json:"start"`
	Target string   `json:"target"`
	Path   []string `json:"path,omitempty"`
	// Found is false when start and target are not connected.
	Found bool `json:"found"`
	// Fingerprint identifies the word list the solution was computed over.
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Steps returns the number of letter changes in the path, 0 when nothing was found.
func (s Solution) Steps() int {
	if len(s.Path) == 0 {
		return 0
	}

	return len(s.Path) - 1
}

// Ladder is a user's asynchronous solve request and its current state.
type Ladder struct {
	ID     LadderID `json:"id"`
	UserID UserID   `json:"userId"`

	// Start and Target are normalized words.
	Start  string       `json:"start"`
	Target string       `json:"target"`
	Status LadderStatus `json:"status"`
	Result Solution     `json:"result"`

	// Attempts is the number of times the worker tried to solve this ladder.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent processing error.
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks a soft delete; zero means not deleted.
	DeletedAt time.Time `json:"-"`
}

// WordCheck is the result of a dictionary membership lookup.
type WordCheck struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

// DictionaryInfo describes the loaded dictionary.
type DictionaryInfo struct {
	WordLength  int    `json:"wordLength"`
	Size        int    `json:"size"`
	Fingerprint string `json:"fingerprint"`
}
