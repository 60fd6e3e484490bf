package repository

import "github.com/defective-development/ehswellnessbingo/internal/domain"

// DefaultSnapshot is the catalog a store seeds on first startup: six
// departments with their prompt pools, the generic wellness pool, and no
// users or boards yet.
func DefaultSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Users: map[string]domain.User{},
		Teams: map[string]domain.TeamMeta{
			"English Department":  {},
			"Math Department":     {},
			"History Department":  {},
			"Science Department":  {},
			"Language Department": {},
			"Art Department":      {},
		},
		Prompts: map[string][]string{
			"English Department": {
				"Read a poem", "Write in a journal", "Analyze a piece of literature",
				"Practice creative writing", "Discuss a book with someone",
			},
			"Math Department": {
				"Solve a puzzle", "Play with numbers", "Calculate mental math",
				"Learn a new formula", "Practice geometry",
			},
			"History Department": {
				"Share a story", "Look up a historical event", "Visit a museum",
				"Read about a historical figure", "Watch a documentary",
			},
			"Science Department": {
				"Drink water", "Observe something natural", "Conduct a simple experiment",
				"Learn about a scientific concept", "Study the weather",
			},
			"Language Department": {
				"Learn a new word", "Practice another language", "Study grammar",
				"Practice pronunciation", "Learn about different cultures",
			},
			"Art Department": {
				"Draw something", "Visit a colorful space", "Create a piece of art",
				"Study art history", "Visit an art gallery",
			},
			domain.GenericPool: {
				"Stretch for 5 minutes", "Get 8 hours of sleep", "Help someone today",
				"Drink more water", "Take a walk outside", "Call a friend or family member",
				"Practice deep breathing", "Declutter your workspace", "Learn something new",
				"Give someone a compliment", "Practice gratitude", "Try a new food",
				"Listen to music", "Read for pleasure", "Exercise for 30 minutes",
				"Meditate for 10 minutes", "Write down your goals", "Clean your living space",
				"Connect with nature", "Practice self-care", "Learn a new skill",
				"Volunteer your time", "Cook a healthy meal", "Practice mindfulness",
				"Express creativity",
			},
		},
		TeamBoards: map[string]map[string]domain.TeamBoard{},
	}
}
