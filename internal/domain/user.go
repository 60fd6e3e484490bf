package domain

// User is one registered player, keyed by username in the users document.
// Building and Team are fixed at registration; later login requests naming a
// different building or team are ignored. Bingos only ever increases.
type User struct {
	Password string `json:"password"`
	Building string `json:"building"`
	Team     string `json:"team"`
	Bingos   int    `json:"bingos"`
}
