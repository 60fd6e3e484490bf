package usecase

import (
	"fmt"
	"strings"

	"github.com/defective-development/ehswellnessbingo/internal/domain"
)

const (
	// teamSizeLimit is the member capacity of one group instance.
	teamSizeLimit = 4
	// maxGroupNumber bounds the overflow-group probe so corrupted counts
	// cannot spin the search forever.
	maxGroupNumber = 1000
)

// AssignGroup picks the group instance a new user joins within a building
// and base team: the base label while it has room, then "Team Group 2",
// "Team Group 3" and so on. Counts are kept per exact label, so each
// overflow group fills independently. Pure function over the user map; the
// caller persists the resulting user record.
func AssignGroup(users map[string]domain.User, building, team string) (string, error) {
	counts := map[string]int{}
	for _, u := range users {
		if u.Building == building && strings.HasPrefix(u.Team, team) {
			counts[u.Team]++
		}
	}
	if counts[team] < teamSizeLimit {
		return team, nil
	}
	for n := 2; n <= maxGroupNumber; n++ {
		label := fmt.Sprintf("%s Group %d", team, n)
		if counts[label] < teamSizeLimit {
			return label, nil
		}
	}
	return "", ErrNoCapacity
}
