package catalog

import (
	"fmt"

	"github.com/lshigami/Tarsius/internal/model"
)

// Catalog is the static, read-only question dataset. It is built once at
// startup and shared by every component that needs to read questions.
type Catalog struct {
	categories []model.Category
	questions  []model.Question // flattened, catalogue order
	questionBy map[string]model.Question
	categoryBy map[string]model.Category
}

// New builds a catalogue from category records and validates that every
// question references the category that owns it.
func New(categories []model.Category) (*Catalog, error) {
	c := &Catalog{
		categories: categories,
		questionBy: make(map[string]model.Question),
		categoryBy: make(map[string]model.Category),
	}
	for _, cat := range categories {
		if _, dup := c.categoryBy[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		c.categoryBy[cat.ID] = cat
		for _, q := range cat.Questions {
			if q.Category != cat.ID {
				return nil, fmt.Errorf("question %q claims category %q but belongs to %q", q.ID, q.Category, cat.ID)
			}
			if _, dup := c.questionBy[q.ID]; dup {
				return nil, fmt.Errorf("duplicate question id %q", q.ID)
			}
			c.questionBy[q.ID] = q
			c.questions = append(c.questions, q)
		}
	}
	return c, nil
}

// Categories returns all categories in catalogue order.
func (c *Catalog) Categories() []model.Category {
	return c.categories
}

// CategoryByID looks a category up by its id.
func (c *Catalog) CategoryByID(id string) (model.Category, bool) {
	cat, ok := c.categoryBy[id]
	return cat, ok
}

// AllQuestions returns the flattened question list in catalogue order.
func (c *Catalog) AllQuestions() []model.Question {
	return c.questions
}

// QuestionByID looks a question up by its id.
func (c *Catalog) QuestionByID(id string) (model.Question, bool) {
	q, ok := c.questionBy[id]
	return q, ok
}

// HasQuestion reports whether id belongs to the catalogue.
func (c *Catalog) HasQuestion(id string) bool {
	_, ok := c.questionBy[id]
	return ok
}

// TotalQuestions is the catalogue-wide question count.
func (c *Catalog) TotalQuestions() int {
	return len(c.questions)
}
