package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/uxlab/internal/ui/theme"
)

const bannerArt = `██╗   ██╗██╗  ██╗██╗      █████╗ ██████╗
██║   ██║╚██╗██╔╝██║     ██╔══██╗██╔══██╗
██║   ██║ ╚███╔╝ ██║     ███████║██████╔╝
██║   ██║ ██╔██╗ ██║     ██╔══██║██╔══██╗
╚██████╔╝██╔╝ ██╗███████╗██║  ██║██████╔╝
 ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═════╝`

// Tagline sits under the banner.
const Tagline = "Learn the laws of UX, one scenario at a time."

// BannerCompact is the fallback for narrow terminals.
const BannerCompact = "U · X · L · A · B"

// bannerMinWidth is the narrowest terminal the block banner fits in.
const bannerMinWidth = 44

// RenderBanner returns the uxlab banner styled in the primary color.
// compact forces the one-line fallback.
func RenderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < bannerMinWidth {
		return style.Render(BannerCompact)
	}
	return style.Render(bannerArt)
}
