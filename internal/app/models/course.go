package models

// Course represents a single course and its scheduling metadata.
// Courses are immutable once loaded into a catalog.
type Course struct {
	ID            string   `json:"id"`
	Title         string   `json:"title,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	// Terms lists the terms in which the course is offered. An empty list
	// means the course runs in any term.
	Terms   []Term  `json:"terms,omitempty"`
	Credits float64 `json:"credits,omitempty"`
	// FullYear marks a course spanning two consecutive semesters. It must
	// start in Fall and occupies capacity in both semesters; Terms is
	// ignored for it.
	FullYear bool `json:"full_year,omitempty"`
}

// Span returns how many consecutive semesters the course occupies.
func (c Course) Span() int {
	if c.FullYear {
		return 2
	}
	return 1
}

// OfferedIn reports whether the course can start in the given term.
func (c Course) OfferedIn(term Term) bool {
	if c.FullYear {
		return term == TermFall
	}
	if len(c.Terms) == 0 {
		return true
	}
	for _, t := range c.Terms {
		if t == term {
			return true
		}
	}
	return false
}
