package entries

import (
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/tui"
)

// promptSnapshot asks for every metric still unset and the note. Replaced in tests.
var promptSnapshot = func(s *models.Snapshot, note *string) error {
	return tui.NewCheckInForm(s, note).Run()
}
