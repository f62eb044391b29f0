package session

import (
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/queries"
)

// ReviewPanel is the listing page's review section state. A failed fetch
// degrades to an empty page with a separate error flag instead of blocking
// the rest of the page.
type ReviewPanel struct {
	page    queries.ReviewPage
	showAll bool
	errored bool
}

func NewReviewPanel() *ReviewPanel {
	return &ReviewPanel{}
}

func (p *ReviewPanel) Resolve(page *queries.ReviewPage, err error) {
	if err != nil || page == nil {
		p.page = queries.ReviewPage{}
		p.errored = err != nil
		return
	}
	p.page = *page
	p.errored = false
}

func (p *ReviewPanel) ToggleShowAll() {
	p.showAll = !p.showAll
}

func (p *ReviewPanel) ShowAll() bool {
	return p.showAll
}

func (p *ReviewPanel) Page() queries.ReviewPage {
	return p.page
}

func (p *ReviewPanel) Errored() bool {
	return p.errored
}

// userMessage converts assembler failures into the page-level banner text.
// errs.Is so marked sentinels from the query layer match too.
func userMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrPropertyIDRequired):
		return "Property ID is required"
	case errs.Is(err, errs.ErrPropertyNotFound):
		return "Property not found"
	default:
		return "Failed to load property details. Please try again."
	}
}
