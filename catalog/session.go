package catalog

import "github.com/24vasilekk/dolce/models"

// Session is one user's browsing state: navigation context, filter
// criteria, sort key and pagination cursor over a product collection.
// Every mutation that changes which items match resets the cursor to
// the first page. Sessions are not safe for concurrent use; each
// request or user gets its own.
type Session struct {
	products []models.Product

	Nav      models.NavigationContext
	Criteria models.FilterCriteria
	SortKey  models.SortKey
	Page     int
	PageSize int
}

// NewSession starts a session over the given catalog snapshot with the
// storefront defaults: name sort, first page.
func NewSession(products []models.Product) *Session {
	return &Session{
		products: products,
		Criteria: models.NewFilterCriteria(),
		SortKey:  models.SortName,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Results is the outcome of one browse interaction.
type Results struct {
	Visible []models.Product
	Total   int
	HasMore bool
}

// Results runs Filter → Sort → VisibleSlice over the session state.
func (s *Session) Results() Results {
	filtered := Filter(s.products, s.Nav, s.Criteria)
	Sort(filtered, s.SortKey)
	return Results{
		Visible: VisibleSlice(filtered, s.Page, s.PageSize),
		Total:   len(filtered),
		HasMore: HasMore(filtered, s.Page, s.PageSize),
	}
}

func (s *Session) SetGender(gender models.Gender) {
	s.Nav.Gender = gender
	s.Page = 1
}

// SetCategory selects a category and clears any subcategory selection.
func (s *Session) SetCategory(category *models.Category) {
	s.Nav.Category = category
	s.Nav.Subcategory = ""
	s.Page = 1
}

func (s *Session) SetSubcategory(subcategory string) {
	s.Nav.Subcategory = subcategory
	s.Page = 1
}

func (s *Session) SetSearch(query string) {
	s.Criteria.SearchQuery = query
	s.Page = 1
}

func (s *Session) SetSort(key models.SortKey) {
	s.SortKey = key
	s.Page = 1
}

// ApplyFilters commits the edited criteria set, restarting pagination.
func (s *Session) ApplyFilters(criteria models.FilterCriteria) {
	s.Criteria = criteria
	s.Page = 1
}

func (s *Session) ClearFilters() {
	s.Criteria.Clear()
	s.Page = 1
}

// RemoveFilter drops a single active criterion (one filter tag).
func (s *Session) RemoveFilter(kind models.FilterKind, value string) {
	s.Criteria.RemoveFilter(kind, value)
	s.Page = 1
}

// LoadMore reveals the next page of the current result.
func (s *Session) LoadMore() {
	s.Page++
}

// GoBack steps up one navigation level: subcategory first, then
// category and gender together.
func (s *Session) GoBack() {
	if s.Nav.Subcategory != "" {
		s.Nav.Subcategory = ""
	} else if s.Nav.Category != nil {
		s.Nav.Category = nil
		s.Nav.Gender = ""
	}
	s.Page = 1
}
