package domain

// GenericPool is the reserved prompts key holding the fallback phrases that
// pad every team's board.
const GenericPool = "generic"

// TeamMeta is the per-team value in the teams catalog. The catalog only
// carries names today; the struct keeps the persisted object form.
type TeamMeta struct{}

// Snapshot is the full persisted state: four documents that are always
// loaded and saved as a unit. TeamBoards is keyed building, then group
// label.
type Snapshot struct {
	Users      map[string]User
	Teams      map[string]TeamMeta
	Prompts    map[string][]string
	TeamBoards map[string]map[string]TeamBoard
}
