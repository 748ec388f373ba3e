package svg

import (
	"fmt"
	"os"

	"github.com/alexanderramin/ganttviz/internal/render"
	"gopkg.in/yaml.v3"
)

// Theme controls the visual styling of the SVG backend. It maps directly to a
// YAML theme file; any zero-valued field keeps its default.
type Theme struct {
	Layout struct {
		Width        int `yaml:"width"`
		Height       int `yaml:"height"`
		MarginTop    int `yaml:"margin_top"`
		MarginBottom int `yaml:"margin_bottom"`
		MarginLeft   int `yaml:"margin_left"`
		MarginRight  int `yaml:"margin_right"`
	} `yaml:"layout"`
	Font struct {
		Family string `yaml:"family"`
		Size   int    `yaml:"size"`
	} `yaml:"font"`
	Colors struct {
		Background string `yaml:"background"`
		Text       string `yaml:"text"`
		Grid       string `yaml:"grid"`
		Arrow      string `yaml:"arrow"`
		BarStroke  string `yaml:"bar_stroke"`
		BarLabel   string `yaml:"bar_label"`
		Red        string `yaml:"red"`
		Blue       string `yaml:"blue"`
		Green      string `yaml:"green"`
		Gray       string `yaml:"gray"`
	} `yaml:"colors"`
}

// DefaultTheme returns the stock look: a 1200x600 canvas, generous left
// margin for employee labels, and the fixed red/blue/green/gray bar palette.
func DefaultTheme() Theme {
	var t Theme
	t.Layout.Width = 1200
	t.Layout.Height = 600
	t.Layout.MarginTop = 60
	t.Layout.MarginBottom = 60
	t.Layout.MarginLeft = 110
	t.Layout.MarginRight = 40
	t.Font.Family = "Helvetica, Arial, sans-serif"
	t.Font.Size = 12
	t.Colors.Background = "#ffffff"
	t.Colors.Text = "#333333"
	t.Colors.Grid = "#cccccc"
	t.Colors.Arrow = "#800080"
	t.Colors.BarStroke = "#000000"
	t.Colors.BarLabel = "#ffffff"
	t.Colors.Red = "#d62728"
	t.Colors.Blue = "#1f77b4"
	t.Colors.Green = "#2ca02c"
	t.Colors.Gray = "#7f7f7f"
	return t
}

// LoadTheme reads a YAML theme file, filling unset fields from the defaults.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("parsing theme file: %w", err)
	}
	return theme, nil
}

// barFill returns the hex fill for a chart color category.
func (t Theme) barFill(c render.Color) string {
	switch c {
	case render.ColorRed:
		return t.Colors.Red
	case render.ColorBlue:
		return t.Colors.Blue
	case render.ColorGreen:
		return t.Colors.Green
	default:
		return t.Colors.Gray
	}
}
