package models

// Icon identifies a glyph. Records carry the identifier only; the web layer
// decides how to draw it.
type Icon string

const (
	IconStar          Icon = "star"
	IconTarget        Icon = "target"
	IconBookOpen      Icon = "book-open"
	IconAward         Icon = "award"
	IconTrophy        Icon = "trophy"
	IconCoins         Icon = "coins"
	IconGift          Icon = "gift"
	IconHistory       Icon = "history"
	IconGraduationCap Icon = "graduation-cap"
	IconHome          Icon = "home"
	IconSearch        Icon = "search"
	IconRoute         Icon = "route"
	IconUser          Icon = "user"
	IconSettings      Icon = "settings"
)
