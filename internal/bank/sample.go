package bank

import "math/rand"

// RandomQuestions samples count questions without replacement, uniformly,
// from the whole catalog or from one category. Asking for more than the pool
// holds returns the entire pool, shuffled.
func (c *Catalog) RandomQuestions(count int, categoryID string) []Question {
	return sample(c.pool(categoryID), count)
}

// RandomQuestionsFiltered samples like RandomQuestions but draws only from
// questions matching the given answer format.
func (c *Catalog) RandomQuestionsFiltered(count int, categoryID string, format Format) []Question {
	var filtered []Question
	for _, q := range c.pool(categoryID) {
		if q.Format == format {
			filtered = append(filtered, q)
		}
	}
	return sample(filtered, count)
}

func (c *Catalog) pool(categoryID string) []Question {
	if categoryID == CategoryAll || categoryID == "" {
		return c.questions
	}
	return c.byCategory[categoryID]
}

// sample returns min(count, len(pool)) questions as a uniform random
// permutation prefix. The pool itself is never reordered.
func sample(pool []Question, count int) []Question {
	if count <= 0 || len(pool) == 0 {
		return nil
	}

	perm := rand.Perm(len(pool))
	if count > len(pool) {
		count = len(pool)
	}

	out := make([]Question, 0, count)
	for _, i := range perm[:count] {
		out = append(out, pool[i])
	}
	return out
}
