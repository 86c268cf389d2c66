package catalog

import "github.com/lshigami/Tarsius/internal/model"

// Default returns the embedded React interview catalogue. The dataset is
// versioned with the binary; panicking on an invalid embedded dataset is a
// build-time bug, not a runtime condition.
func Default() *Catalog {
	c, err := New(defaultCategories())
	if err != nil {
		panic("catalog: invalid embedded dataset: " + err.Error())
	}
	return c
}

func defaultCategories() []model.Category {
	return []model.Category{
		{
			ID:          "fundamentals",
			Title:       "React Fundamentals",
			Icon:        "🚀",
			Description: "Core React concepts and principles",
			Questions: []model.Question{
				{
					ID:            "virtual-dom",
					Question:      "What is React's Virtual DOM, and how does it improve rendering performance?",
					Answer:        "The Virtual DOM is an in-memory representation of the real DOM. On state changes React builds a new virtual tree, diffs it against the previous one (reconciliation) and applies only the minimal set of real DOM updates, batching them together.",
					Category:      "fundamentals",
					Difficulty:    model.DifficultyMedium,
					Tags:          []string{"virtual-dom", "performance", "reconciliation"},
					EstimatedTime: 8,
					InterviewType: "technical",
					Companies:     []string{"Facebook", "Netflix", "Airbnb", "Uber"},
					FollowUpQuestions: []string{
						"How does React Fiber improve upon the traditional reconciliation?",
						"What are the limitations of Virtual DOM?",
					},
				},
				{
					ID:            "hooks",
					Question:      "What are React Hooks, and how have they changed the way we build components?",
					Answer:        "Hooks are functions that let functional components use state and other React features. useState and useEffect replace class state and lifecycle methods, and custom hooks enable logic reuse between components.",
					Category:      "fundamentals",
					Difficulty:    model.DifficultyEasy,
					Tags:          []string{"hooks", "functional-components", "useState", "useEffect"},
					EstimatedTime: 5,
					InterviewType: "technical",
					Companies:     []string{"Google", "Microsoft", "Amazon"},
					FollowUpQuestions: []string{
						"What are the rules of hooks?",
						"How do you create custom hooks?",
					},
				},
				{
					ID:            "jsx-typescript",
					Question:      "How do you use JSX and TypeScript in React development? What advantages do they offer?",
					Answer:        "JSX lets you write HTML-like markup inside JavaScript, making component templates readable. TypeScript adds compile-time type safety, better IDE support and self-documenting props via interface definitions.",
					Category:      "fundamentals",
					Difficulty:    model.DifficultyEasy,
					Tags:          []string{"jsx", "typescript", "type-safety"},
					EstimatedTime: 6,
					InterviewType: "technical",
				},
				{
					ID:            "component-structure",
					Question:      "How do you structure React components for maintainability?",
					Answer:        "Keep components small and focused, separate container and presentational concerns, colocate related files, and lift shared state only as high as it needs to go.",
					Category:      "fundamentals",
					Difficulty:    model.DifficultyMedium,
					Tags:          []string{"architecture", "components", "best-practices"},
					EstimatedTime: 7,
					InterviewType: "technical",
				},
			},
		},
		{
			ID:          "state-management",
			Title:       "State Management",
			Icon:        "🔄",
			Description: "Managing application state and data flow",
			Questions: []model.Question{
				{
					ID:            "redux",
					Question:      "Explain the Redux data flow and when you would reach for it.",
					Answer:        "Redux keeps application state in a single store. Components dispatch actions, reducers compute the next state as a pure function, and subscribers re-render. It pays off when many distant components share state or when state transitions need auditing.",
					Category:      "state-management",
					Difficulty:    model.DifficultyMedium,
					Tags:          []string{"redux", "store", "actions", "reducers"},
					EstimatedTime: 8,
					InterviewType: "technical",
					Companies:     []string{"Twitter", "Instagram"},
				},
				{
					ID:            "context-vs-redux",
					Question:      "When would you use React Context instead of Redux?",
					Answer:        "Context is built in and fits low-frequency, app-wide values such as theme or locale. Redux adds middleware, devtools and predictable updates for complex, high-frequency state. Context re-renders every consumer, so it is a poor fit for rapidly changing data.",
					Category:      "state-management",
					Difficulty:    model.DifficultyMedium,
					Tags:          []string{"context", "redux", "comparison"},
					EstimatedTime: 6,
					InterviewType: "technical",
				},
				{
					ID:            "side-effects",
					Question:      "How do you manage side effects in React applications?",
					Answer:        "Side effects live in useEffect (or in middleware such as redux-thunk/saga). Effects declare their dependencies, clean up subscriptions on unmount, and keep rendering pure.",
					Category:      "state-management",
					Difficulty:    model.DifficultyMedium,
					Tags:          []string{"side-effects", "useEffect", "middleware"},
					EstimatedTime: 7,
					InterviewType: "technical",
				},
				{
					ID:            "prop-drilling",
					Question:      "What is prop drilling and how do you avoid it?",
					Answer:        "Prop drilling is passing data through layers of components that do not use it. Avoid it with composition (children props), Context for shared values, or a state container for genuinely global state.",
					Category:      "state-management",
					Difficulty:    model.DifficultyEasy,
					Tags:          []string{"props", "composition", "context"},
					EstimatedTime: 4,
					InterviewType: "technical",
				},
			},
		},
		{
			ID:          "performance",
			Title:       "Performance Optimization",
			Icon:        "⚡",
			Description: "Techniques for optimizing React applications",
			Questions: []model.Question{
				{
					ID:            "code-splitting",
					Question:      "How do you implement code splitting in a React application?",
					Answer:        "Use dynamic import() with React.lazy and Suspense to split bundles at route or component boundaries, so users download only the code for the screen they are on.",
					Category:      "performance",
					Difficulty:    model.DifficultyMedium,
					Tags:          []string{"code-splitting", "lazy-loading", "bundling"},
					EstimatedTime: 7,
					InterviewType: "technical",
				},
				{
					ID:            "memoization",
					Question:      "Explain memoization in React: React.memo, useMemo and useCallback.",
					Answer:        "React.memo skips re-rendering a component when its props are shallow-equal. useMemo caches an expensive computed value, useCallback caches a function identity. All three trade memory for fewer renders and only help when the inputs are actually stable.",
					Category:      "performance",
					Difficulty:    model.DifficultyMedium,
					Tags:          []string{"memoization", "react-memo", "useMemo", "useCallback"},
					EstimatedTime: 8,
					InterviewType: "technical",
					Companies:     []string{"Netflix", "Airbnb"},
				},
				{
					ID:            "suspense",
					Question:      "What is React Suspense and how does it change data fetching?",
					Answer:        "Suspense lets a component declare that it is waiting for something, rendering a fallback until the promise resolves. Combined with concurrent rendering it moves loading states out of component logic and into the tree.",
					Category:      "performance",
					Difficulty:    model.DifficultyHard,
					Tags:          []string{"suspense", "concurrent", "data-fetching"},
					EstimatedTime: 10,
					InterviewType: "technical",
				},
			},
		},
		{
			ID:          "testing",
			Title:       "Testing & Quality",
			Icon:        "🧪",
			Description: "Testing strategies and quality assurance",
			Questions: []model.Question{
				{
					ID:            "testing-approach",
					Question:      "How do you approach testing a React application?",
					Answer:        "Follow the testing trophy: mostly integration tests with React Testing Library asserting on user-visible behavior, a base of unit tests for pure logic, and a thin layer of end-to-end tests for critical flows.",
					Category:      "testing",
					Difficulty:    model.DifficultyMedium,
					Tags:          []string{"testing", "testing-library", "strategy"},
					EstimatedTime: 8,
					InterviewType: "technical",
				},
				{
					ID:            "component-testing",
					Question:      "How do you test a component that fetches data?",
					Answer:        "Mock the network boundary (msw or a fetch mock), render the component, and assert on the loading, success and error states the user sees. Avoid asserting on implementation details like internal state.",
					Category:      "testing",
					Difficulty:    model.DifficultyMedium,
					Tags:          []string{"testing", "mocking", "async"},
					EstimatedTime: 9,
					InterviewType: "technical",
				},
			},
		},
	}
}
