package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
	"github.com/oguzk/degreeplanner/internal/pkg/logger"
)

// courseRecord is the on-disk shape of one course entry.
type courseRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Prerequisites []string `json:"prerequisites"`
	Terms         []string `json:"terms"`
	Credits       float64  `json:"credits"`
	FullYear      bool     `json:"full_year"`
}

// LoadFile reads a JSON course file and builds a catalog snapshot. Dangling
// prerequisite references are logged as data errors but do not block the
// load; the closure resolver surfaces them per request.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCatalogUnavailable, err)
	}

	var records []courseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", apperrors.ErrCatalogInvalid, path, err)
	}

	courses := make([]models.Course, 0, len(records))
	for _, record := range records {
		terms := make([]models.Term, 0, len(record.Terms))
		for _, s := range record.Terms {
			term, err := models.ParseTerm(s)
			if err != nil {
				return nil, fmt.Errorf("%w: course %q: %v", apperrors.ErrCatalogInvalid, record.ID, err)
			}
			terms = append(terms, term)
		}
		courses = append(courses, models.Course{
			ID:            record.ID,
			Title:         record.Title,
			Prerequisites: record.Prerequisites,
			Terms:         terms,
			Credits:       record.Credits,
			FullYear:      record.FullYear,
		})
	}

	cat, dangling, err := New(courses)
	if err != nil {
		return nil, err
	}

	if len(dangling) > 0 {
		logger.Warn().
			Str("path", path).
			Strs("identifiers", dangling).
			Msg("catalog references unknown prerequisite courses")
	}

	logger.Info().
		Str("path", path).
		Int("courses", cat.Len()).
		Msg("course catalog loaded")

	return cat, nil
}
