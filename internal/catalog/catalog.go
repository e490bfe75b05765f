package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Course is a single catalog entry. Price is in whole currency units;
// conversion to minor units happens at order-creation time.
type Course struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Catalog is the immutable course-to-price mapping. It is built once at
// startup and never mutated afterwards, so concurrent reads need no
// synchronization.
type Catalog struct {
	prices map[string]int64
}

// New builds a catalog from course entries, validating each one.
func New(courses []Course) (*Catalog, error) {
	if len(courses) == 0 {
		return nil, fmt.Errorf("course catalog is empty")
	}

	prices := make(map[string]int64, len(courses))
	for _, course := range courses {
		if course.Name == "" {
			return nil, fmt.Errorf("course catalog entry has an empty name")
		}
		if course.Price <= 0 {
			return nil, fmt.Errorf("course %q has a non-positive price %d", course.Name, course.Price)
		}
		if _, exists := prices[course.Name]; exists {
			return nil, fmt.Errorf("duplicate course %q in catalog", course.Name)
		}
		prices[course.Name] = course.Price
	}

	return &Catalog{prices: prices}, nil
}

// Load reads and validates the catalog file. Any failure here is fatal
// for the caller: the process must not start without a usable catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course catalog: %w", err)
	}

	var courses []Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("failed to parse course catalog: %w", err)
	}

	return New(courses)
}

// Price returns the whole-unit price for a course and whether it exists.
func (c *Catalog) Price(name string) (int64, bool) {
	price, ok := c.prices[name]
	return price, ok
}

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int {
	return len(c.prices)
}
