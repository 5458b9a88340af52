package components

import (
	"fmt"

	"github.com/quillon/companyscope/internal/models"
	"github.com/quillon/companyscope/internal/utils"
	"github.com/quillon/companyscope/ui/styles"
)

// RenderResult draws the result region: exactly one of the placeholder
// prompt, the loading spinner, the error banner or the rendered report.
func RenderResult(m models.AppModel) string {
	switch m.Display() {
	case models.StateLoading:
		return renderLoading(m)
	case models.StateError:
		return styles.ErrorBannerStyle().Render(m.ErrMsg)
	case models.StateSuccess:
		return styles.ReportStyle().Render(utils.RenderMarkdown(m.Report))
	default:
		return styles.PlaceholderStyle().Render("Enter a company name and press Enter to research it.")
	}
}

func renderLoading(m models.AppModel) string {
	line := fmt.Sprintf("%s Researching… %ds", m.Spinner.View(), int(m.Elapsed.Seconds()))
	out := styles.SpinnerLineStyle().Render(line)

	if m.MeanDuration > 0 {
		hint := fmt.Sprintf("usually takes ~%ds", int(m.MeanDuration.Seconds()))
		out += "\n" + styles.HintStyle().Render(hint)
	}

	return out
}
