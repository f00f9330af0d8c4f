package draw

import (
	"github.com/voleisexta/roster-system/models"
)

// TeamDrawer produces a team assignment from the confirmed segment of the
// roster. Implementations must not mutate the input records.
type TeamDrawer interface {
	Draw(confirmed []*models.Confirmation) models.TeamAssignment

	GetName() string
}
