package charts

// SeriesKind distinguishes how a series is drawn
type SeriesKind int

const (
	LineSeries SeriesKind = iota
	BarSeries
)

// Series is one plotted series of a chart spec
type Series struct {
	Name      string
	Kind      SeriesKind
	X         []string
	Y         []float64
	Color     string
	Dashed    bool
	Markers   bool
	Secondary bool // plotted against the secondary y-axis
}

// Theme holds the base styling shared by every chart
type Theme struct {
	Background   string
	GridColor    string
	FontColor    string
	Height       int
	MarginLeft   int
	MarginRight  int
	MarginTop    int
	MarginBottom int
}

// Spec is a fully specified chart description, ready for a rendering
// collaborator. Constructed fresh per page render, never persisted.
type Spec struct {
	Title          string
	XTitle         string
	YTitle         string
	SecondaryTitle string
	HasSecondary   bool
	Horizontal     bool
	ColorScale     []string // continuous color scale for single-series bars
	CommaTicks     bool
	Series         []Series
	Theme          Theme
}

// Dark theme styling constants, applied to every chart and the page shell.
const (
	BackgroundColor = "#0E1117"
	GridColor       = "rgba(255,255,255,0.08)"
	FontColor       = "rgba(255,255,255,0.92)"

	defaultHeight   = 560
	rankedBarHeight = 700
)

// blues is the continuous color scale for ranked bars, low to high
var blues = []string{"#deebf7", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#084594"}

// DarkTheme returns the shared base styling. Every chart goes through this
// one function rather than styling per page.
func DarkTheme() Theme {
	return Theme{
		Background:   BackgroundColor,
		GridColor:    GridColor,
		FontColor:    FontColor,
		Height:       defaultHeight,
		MarginLeft:   70,
		MarginRight:  70,
		MarginTop:    95,
		MarginBottom: 55,
	}
}
