package badge_svg

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/davarch/coolify-badge/internal/domain"
)

//go:embed badges/deploy-status.svg
var deployBadge string

const (
	Label       = "deploy"
	LabelWidth  = 50
	CharWidth   = 8
	MinWidth    = 40
	BadgeHeight = 20
)

var badgeTemplate = template.Must(template.New("deploy-status.svg").Parse(deployBadge))

type Renderer struct {
	tmpl *template.Template
}

func New() *Renderer { return &Renderer{tmpl: badgeTemplate} }

type layout struct {
	Label       string
	Status      string
	ColorLeft   string
	ColorRight  string
	ColorShadow string
	ColorFont   string
	Width       int
	Height      int
	LabelWidth  int
	StatusWidth int
	LabelX      int
	StatusX     int
}

// StatusWidth is the width of the right-hand field for s, estimated per
// byte of the raw status.
func StatusWidth(s domain.DeploymentStatus) int {
	return max(MinWidth, CharWidth*len(s))
}

// Width is the full badge width for s.
func Width(s domain.DeploymentStatus) int {
	return LabelWidth + StatusWidth(s)
}

func newLayout(s domain.DeploymentStatus) layout {
	sw := StatusWidth(s)
	return layout{
		Label:       Label,
		Status:      xmlText(string(s)),
		ColorLeft:   "#555",
		ColorRight:  s.Color(),
		ColorShadow: "#010101",
		ColorFont:   "#fff",
		Width:       LabelWidth + sw,
		Height:      BadgeHeight,
		LabelWidth:  LabelWidth,
		StatusWidth: sw,
		LabelX:      LabelWidth / 2,
		StatusX:     LabelWidth + sw/2,
	}
}

// xmlText repairs invalid UTF-8 and drops characters XML 1.0 forbids.
// Markup escaping is left to the template.
func xmlText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		default:
			return r
		}
	}, strings.ToValidUTF8(s, "\uFFFD"))
}

// Render writes the badge for s. Status text is escaped by the template.
func (r *Renderer) Render(w io.Writer, s domain.DeploymentStatus) error {
	if err := r.tmpl.Execute(w, newLayout(s)); err != nil {
		return fmt.Errorf("render badge: %w", err)
	}
	return nil
}
