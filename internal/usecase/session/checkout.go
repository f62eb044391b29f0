package session

import (
	"strconv"
	"sync"

	"stayfinder/internal/usecase/commands"
)

// FetchToken tags one in-flight property fetch with the identifier and
// generation it was issued for.
type FetchToken struct {
	propertyID string
	generation uint64
}

// CheckoutState holds the checkout page's summary, loading and error state.
// Fetch completions are applied through Complete, which discards results
// whose token no longer matches the current generation, so a late-arriving
// stale response can never overwrite newer state.
type CheckoutState struct {
	mu         sync.Mutex
	generation uint64
	propertyID string
	loading    bool
	summary    *commands.BookingSummary
	message    string
}

func NewCheckoutState() *CheckoutState {
	return &CheckoutState{}
}

// Begin marks a fetch for propertyID as in flight and supersedes any earlier
// fetch still outstanding.
func (s *CheckoutState) Begin(propertyID string) FetchToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.propertyID = propertyID
	s.loading = true
	s.message = ""
	return FetchToken{propertyID: propertyID, generation: s.generation}
}

// Complete applies a fetch result. Stale tokens are ignored and the method
// reports whether the result was applied. On failure the summary stays unset;
// no partial or defaulted summary is ever exposed after an error.
func (s *CheckoutState) Complete(tok FetchToken, summary *commands.BookingSummary, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.generation != s.generation {
		return false
	}
	s.loading = false
	if err != nil {
		s.summary = nil
		s.message = userMessage(err)
		return true
	}
	s.summary = summary
	s.message = ""
	return true
}

// Fail records a page-level error without a fetch, e.g. a missing property
// identifier where no request is even issued.
func (s *CheckoutState) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.loading = false
	s.summary = nil
	s.message = userMessage(err)
}

func (s *CheckoutState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *CheckoutState) Summary() *commands.BookingSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// ErrorMessage returns the dismissable page-level message, empty when none.
func (s *CheckoutState) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Dismiss clears the page-level error banner.
func (s *CheckoutState) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = ""
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func i64toa(n int64) string {
	return strconv.FormatInt(n, 10)
}
