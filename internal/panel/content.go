package panel

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/depot-nav/internal/catalog"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// Numbers on panels use grouped digits.
var printer = message.NewPrinter(language.English)

// Content is the text shown on a panel.
type Content struct {
	Title string
	Body  []string
}

// Source resolves a building id to panel content and a world anchor.
type Source interface {
	Content(id string) (Content, math.Vec3, bool)
}

// CatalogSource builds panel content from the building catalog. Panels
// float Lift units above the building's position.
type CatalogSource struct {
	Catalog *catalog.Catalog
	Lift    float64
}

// Content implements Source. It fails only for unknown buildings; a
// building without details gets a placeholder body.
func (s CatalogSource) Content(id string) (Content, math.Vec3, bool) {
	b, err := s.Catalog.Building(id)
	if err != nil {
		return Content{}, math.Vec3{}, false
	}
	d, ok := s.Catalog.Detail(id)
	return Describe(b, d, ok), b.Position.Add(math.Vec3{Y: s.Lift}), true
}

// Describe formats a building and its optional details.
func Describe(b catalog.Building, d catalog.Detail, hasDetail bool) Content {
	if !hasDetail {
		return Content{
			Title: b.Name,
			Body:  []string{"Building ID: " + b.ID},
		}
	}

	c := Content{Title: d.Name}
	if c.Title == "" {
		c.Title = b.Name
	}
	if d.Description != "" {
		c.Body = append(c.Body, d.Description)
	}
	if len(d.Functions) > 0 {
		c.Body = append(c.Body, "Functions: "+strings.Join(d.Functions, ", "))
	}
	if d.Area != "" {
		c.Body = append(c.Body, "Area: "+d.Area)
	}
	if d.Capacity != "" {
		c.Body = append(c.Body, "Capacity: "+d.Capacity)
	}
	if d.Staff > 0 {
		c.Body = append(c.Body, printer.Sprintf("Staff: %d", d.Staff))
	}
	return c
}
