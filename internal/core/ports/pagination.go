package ports

// Page is the offset/limit window applied to list operations.
// Zero values fall back to skip=0, limit=100 at the service layer.
type Page struct {
	Skip  int64
	Limit int64
}

const DefaultPageLimit = 100

// Normalized returns the page with defaults applied. The limit is not
// capped.
func (p Page) Normalized() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	return p
}
