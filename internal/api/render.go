package api

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/david/pathly/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{"entry", "dashboard", "explore", "pathway", "tokens", "profile", "settings", "notfound"}

// glyphs resolves icon identifiers at the presentation boundary.
var glyphs = map[models.Icon]string{
	models.IconStar:          "★",
	models.IconTarget:        "◎",
	models.IconBookOpen:      "📖",
	models.IconAward:         "🏅",
	models.IconTrophy:        "🏆",
	models.IconCoins:         "🪙",
	models.IconGift:          "🎁",
	models.IconHistory:       "🕘",
	models.IconGraduationCap: "🎓",
	models.IconHome:          "⌂",
	models.IconSearch:        "🔍",
	models.IconRoute:         "🧭",
	models.IconUser:          "👤",
	models.IconSettings:      "⚙",
}

func glyph(i models.Icon) string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return "•"
}

// dateString renders YYYY-MM-DD as "Sat Jan 20 2024".
func dateString(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("Mon Jan 02 2006")
}

type pageRenderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*pageRenderer, error) {
	funcs := template.FuncMap{
		"icon": glyph,
		"date": dateString,
	}
	r := &pageRenderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *pageRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
