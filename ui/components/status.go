package components

import (
	"github.com/quillon/companyscope/internal/models"
	"github.com/quillon/companyscope/ui/styles"
)

func RenderStatus(m models.AppModel) string {
	return styles.StatusStyle(m.Width).Render(m.Status)
}
