package service

import (
	"encoding/json"

	"github.com/lshigami/Tarsius/internal/catalog"
	"github.com/lshigami/Tarsius/internal/model"
)

// memStore is an in-memory stand-in for the persistent key-value store,
// keeping the same JSON round-trip semantics.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(key string, dest any) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (m *memStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.data[key] = raw
}

func testCatalog() *catalog.Catalog {
	c, err := catalog.New([]model.Category{
		{
			ID:    "fundamentals",
			Title: "React Fundamentals",
			Questions: []model.Question{
				{ID: "hooks", Question: "What are React Hooks?", Answer: "Functions that add state to functional components.", Category: "fundamentals", Difficulty: model.DifficultyEasy, Tags: []string{"hooks"}},
				{ID: "virtual-dom", Question: "What is the Virtual DOM?", Answer: "An in-memory DOM representation.", Category: "fundamentals", Difficulty: model.DifficultyMedium},
				{ID: "jsx", Question: "What is JSX?", Answer: "HTML-like syntax in JavaScript.", Category: "fundamentals", Difficulty: model.DifficultyEasy},
			},
		},
		{
			ID:    "performance",
			Title: "Performance",
			Questions: []model.Question{
				{ID: "memoization", Question: "Explain memoization in React.", Answer: "Caching renders and values.", Category: "performance", Difficulty: model.DifficultyMedium},
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
