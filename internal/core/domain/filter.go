package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CategorySelection is either no selection or exactly one category id.
// The zero value means no selection.
type CategorySelection struct {
	id  int
	set bool
}

func NoSelection() CategorySelection {
	return CategorySelection{}
}

func SelectCategory(id int) CategorySelection {
	return CategorySelection{id: id, set: true}
}

func (s CategorySelection) ID() (int, bool) {
	return s.id, s.set
}

// Matches reports whether id is the selected category id.
func (s CategorySelection) Matches(id int) bool {
	return s.set && s.id == id
}

// String returns the value the selection has in a query string.
func (s CategorySelection) String() string {
	if !s.set {
		return ""
	}
	return strconv.Itoa(s.id)
}

// ParseCategorySelection parses a query value. Blank means no selection.
// A value which is not an integer also yields no selection, together with
// an error the caller may log.
func ParseCategorySelection(v string) (CategorySelection, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return NoSelection(), nil
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return NoSelection(), fmt.Errorf("invalid category %q: %w", v, err)
	}
	return SelectCategory(id), nil
}

// FilterProducts returns the products whose category id equals the
// selection, in input order. With no selection ps is returned unchanged.
// The input slice is never modified.
func FilterProducts(ps []Product, sel CategorySelection) []Product {
	id, ok := sel.ID()
	if !ok {
		return ps
	}

	filtered := make([]Product, 0, len(ps))
	for _, p := range ps {
		if p.Category.ID == id {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
