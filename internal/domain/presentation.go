package domain

// Presentation lookups keyed by free-text domain fields. Categories double
// as UI theming keys and achievement icons are string tags; both resolve
// through a closed table with an explicit default so new values never break
// the rendering layer.

const (
	DefaultCategoryAccent  = "slate"
	DefaultAchievementIcon = "medal"
)

var categoryAccents = map[string]string{
	"Web Development": "indigo",
	"Programming":     "emerald",
	"Productivity":    "amber",
	"Business":        "sky",
	"Marketing":       "rose",
	"Engagement":      "violet",
	"Assessment":      "cyan",
	"Project":         "orange",
}

var achievementIcons = map[string]string{
	"code":   "code",
	"brush":  "brush",
	"clock":  "clock",
	"award":  "award",
	"star":   "star",
	"layers": "layers",
}

// AccentForCategory maps a category label to its UI accent key.
func AccentForCategory(category string) string {
	if accent, ok := categoryAccents[category]; ok {
		return accent
	}
	return DefaultCategoryAccent
}

// IconForAchievement maps an icon tag to a known presentation icon.
func IconForAchievement(icon string) string {
	if resolved, ok := achievementIcons[icon]; ok {
		return resolved
	}
	return DefaultAchievementIcon
}
