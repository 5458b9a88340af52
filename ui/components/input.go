package components

import (
	"github.com/quillon/companyscope/internal/models"
	"github.com/quillon/companyscope/ui/styles"
)

// RenderInput draws the company name field. While a request is outstanding
// the field is drawn dimmed to signal it is inert.
func RenderInput(m models.AppModel) string {
	if m.Loading {
		return styles.InputDisabledStyle(m.Width).Render(m.Input.Value())
	}
	return styles.InputStyle(m.Width).Render(m.Input.View())
}
