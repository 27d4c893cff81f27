package raffle

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// randIndex is swapped out in tests for deterministic draws.
var randIndex = rand.IntN

type SignupOutcome int

const (
	// SignupUnknown means there is no open raffle for the key, usually
	// because the draw already happened. Callers ignore the event.
	SignupUnknown SignupOutcome = iota
	SignupAlreadyJoined
	SignupJoined
)

type Raffle struct {
	WinnerCount  int
	Participants []snowflake.ID
}

// Store owns every open raffle, keyed by the announcement message ID.
// An entry exists in the store iff its draw has not happened yet.
// disgo dispatches gateway events on separate goroutines, so the store
// carries its own lock.
type Store struct {
	mu      sync.Mutex
	raffles map[snowflake.ID]*Raffle
}

func NewStore() *Store {
	return &Store{
		raffles: map[snowflake.ID]*Raffle{},
	}
}

func (s *Store) Create(messageID snowflake.ID, winnerCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raffles[messageID] = &Raffle{WinnerCount: winnerCount}
}

func (s *Store) Signup(messageID snowflake.ID, userID snowflake.ID) SignupOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	raffle, ok := s.raffles[messageID]
	if !ok {
		return SignupUnknown
	}
	if slices.Contains(raffle.Participants, userID) {
		return SignupAlreadyJoined
	}
	raffle.Participants = append(raffle.Participants, userID)
	return SignupJoined
}

// Lookup reports the state of a raffle without touching it. It lets the
// draw handler answer the no-participants case and strip the announcement's
// buttons before the entry is consumed, so a failed Discord edit leaves
// the raffle intact.
func (s *Store) Lookup(messageID snowflake.ID) (winnerCount int, participants int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raffle, ok := s.raffles[messageID]
	if !ok {
		return 0, 0, false
	}
	return raffle.WinnerCount, len(raffle.Participants), true
}

// Draw picks min(WinnerCount, participants) distinct winners uniformly at
// random without replacement and removes the raffle from the store. Winners
// are returned in selection order. The sampling repeatedly removes a uniform
// pick from a shrinking candidate set, which keeps every subset equally
// likely.
func (s *Store) Draw(messageID snowflake.ID) ([]snowflake.ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raffle, ok := s.raffles[messageID]
	if !ok {
		return nil, false
	}
	delete(s.raffles, messageID)

	candidates := slices.Clone(raffle.Participants)
	var winners []snowflake.ID
	for len(winners) < raffle.WinnerCount && len(candidates) > 0 {
		i := randIndex(len(candidates))
		winners = append(winners, candidates[i])
		candidates = slices.Delete(candidates, i, i+1)
	}
	return winners, true
}
