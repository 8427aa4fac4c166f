package chart

import (
	"strings"

	"github.com/onehealthlab/evidence-map/internal/config"
	"github.com/onehealthlab/evidence-map/internal/evidence"
)

// Plotly figure specification, marshalled as-is into the dashboard page and
// handed to Plotly.newPlot.

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type          string   `json:"type"`
	Mode          string   `json:"mode"`
	Name          string   `json:"name"`
	X             []string `json:"x"`
	Y             []string `json:"y"`
	Marker        Marker   `json:"marker"`
	CustomData    [][]any  `json:"customdata"`
	HoverTemplate string   `json:"hovertemplate"`
}

type Marker struct {
	Color    string     `json:"color"`
	Size     []int      `json:"size"`
	SizeMode string     `json:"sizemode"`
	SizeRef  float64    `json:"sizeref"`
	SizeMin  float64    `json:"sizemin"`
	Line     MarkerLine `json:"line"`
}

type MarkerLine struct {
	Width float64 `json:"width"`
}

type Layout struct {
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Margin      Margin       `json:"margin"`
	XAxis       AxisLayout   `json:"xaxis"`
	YAxis       AxisLayout   `json:"yaxis"`
	Legend      Legend       `json:"legend"`
	Annotations []Annotation `json:"annotations"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type AxisLayout struct {
	Title         AxisTitle `json:"title"`
	Type          string    `json:"type"`
	CategoryOrder string    `json:"categoryorder"`
	CategoryArray []string  `json:"categoryarray"`
	TickMode      string    `json:"tickmode"`
	TickVals      []string  `json:"tickvals"`
	TickText      []string  `json:"ticktext"`
	TickAngle     float64   `json:"tickangle,omitempty"`
	TickFont      Font      `json:"tickfont"`
	AutoMargin    bool      `json:"automargin,omitempty"`
}

type AxisTitle struct {
	Text string `json:"text"`
}

type Font struct {
	Size int `json:"size"`
}

type Legend struct {
	Title       LegendTitle `json:"title"`
	Orientation string      `json:"orientation"`
	YAnchor     string      `json:"yanchor"`
	Y           float64     `json:"y"`
	XAnchor     string      `json:"xanchor"`
	X           float64     `json:"x"`
}

type LegendTitle struct {
	Text string `json:"text"`
}

type Annotation struct {
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         any     `json:"x"`
	Y         any     `json:"y"`
	Text      string  `json:"text"`
	TextAngle float64 `json:"textangle,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
	Align     string  `json:"align,omitempty"`
	Font      Font    `json:"font"`
	BGColor   string  `json:"bgcolor,omitempty"`
}

// Legend order and palette for the direction classes.
var (
	directionOrder = []string{
		"positive",
		"mostly positive",
		"inconclusive/mixed",
		"mostly negative",
		"negative",
	}
	directionColors = map[string]string{
		"positive":           "#1b9e77",
		"mostly positive":    "#66c2a4",
		"inconclusive/mixed": "#7f7f7f",
		"mostly negative":    "#fc8d62",
		"negative":           "#d95f02",
	}
)

// fallbackColor covers labels outside the palette (in practice "N/A").
const fallbackColor = "#636efa"

const hoverTemplate = "<b>Intervention</b>: %{customdata[0]}<br>" +
	"<b>Result</b>: %{customdata[1]}<br>" +
	"<b>Number of articles</b>: %{customdata[2]}<br>" +
	"<b>Strength of evidence</b>: %{customdata[3]}<br>" +
	"<b>Direction of evidence</b>: %{customdata[4]}" +
	"<extra></extra>"

// BuildFigure assembles the bubble chart: one scatter trace per direction
// class so the legend doubles as a color key. Marker sizing is area-based
// with a shared sizeref, so the largest group renders at MaxBubblePx and
// every other bubble scales proportionally by area.
func BuildFigure(agg []evidence.AggregateRow, yAxis, xAxis Axis, itemsByTier map[string][]string, cfg config.ChartConfig) Figure {
	maxN := 1
	for _, row := range agg {
		if row.N > maxN {
			maxN = row.N
		}
	}
	sizeRef := 2.0 * float64(maxN) / float64(cfg.MaxBubblePx*cfg.MaxBubblePx)

	fig := Figure{
		Data:   buildTraces(agg, sizeRef),
		Layout: buildLayout(yAxis, xAxis, itemsByTier, cfg),
	}
	return fig
}

func buildTraces(agg []evidence.AggregateRow, sizeRef float64) []Trace {
	byLabel := map[string][]evidence.AggregateRow{}
	labelOrder := append([]string{}, directionOrder...)
	known := map[string]bool{}
	for _, l := range directionOrder {
		known[l] = true
	}
	for _, row := range agg {
		if !known[row.DirectionLabel] {
			known[row.DirectionLabel] = true
			labelOrder = append(labelOrder, row.DirectionLabel)
		}
		byLabel[row.DirectionLabel] = append(byLabel[row.DirectionLabel], row)
	}

	var traces []Trace
	for _, label := range labelOrder {
		rows := byLabel[label]
		if len(rows) == 0 {
			continue
		}
		color, ok := directionColors[label]
		if !ok {
			color = fallbackColor
		}
		tr := Trace{
			Type: "scatter",
			Mode: "markers",
			Name: label,
			Marker: Marker{
				Color:    color,
				SizeMode: "area",
				SizeRef:  sizeRef,
				SizeMin:  4,
				Line:     MarkerLine{Width: 0},
			},
			HoverTemplate: hoverTemplate,
		}
		for _, row := range rows {
			tr.X = append(tr.X, XColKey(row.OutcomeType, row.OutcomeName))
			tr.Y = append(tr.Y, YRowKey(row.CapabilityL1, row.CapabilityL2))
			tr.Marker.Size = append(tr.Marker.Size, row.N)
			tr.CustomData = append(tr.CustomData, []any{
				row.CapabilityL1 + " → " + row.CapabilityL2,
				row.OutcomeName,
				row.N,
				row.StrengthLabel,
				row.DirectionLabel,
			})
		}
		traces = append(traces, tr)
	}
	return traces
}

func buildLayout(yAxis, xAxis Axis, itemsByTier map[string][]string, cfg config.ChartConfig) Layout {
	nRows := len(yAxis.Order)
	if nRows < 1 {
		nRows = 1
	}
	height := cfg.BaseHeight + cfg.RowHeight*nRows
	if height > cfg.MaxHeight {
		height = cfg.MaxHeight
	}

	layout := Layout{
		Height: height,
		Width:  cfg.Width,
		Margin: Margin{L: 520, R: 60, T: 90, B: 330},
		XAxis: AxisLayout{
			Title:         AxisTitle{Text: ""},
			Type:          "category",
			CategoryOrder: "array",
			CategoryArray: xAxis.Order,
			TickMode:      "array",
			TickVals:      xAxis.Order,
			TickText:      htmlBreaksAll(xAxis.TickText),
			TickAngle:     35,
			TickFont:      Font{Size: 11},
		},
		YAxis: AxisLayout{
			Title:         AxisTitle{Text: "Intervention themes"},
			Type:          "category",
			CategoryOrder: "array",
			CategoryArray: yAxis.Order,
			TickMode:      "array",
			TickVals:      yAxis.Order,
			TickText:      htmlBreaksAll(yAxis.TickText),
			TickFont:      Font{Size: 11},
			AutoMargin:    true,
		},
		Legend: Legend{
			Title:       LegendTitle{Text: "Direction of evidence"},
			Orientation: "h",
			YAnchor:     "bottom",
			Y:           1.02,
			XAnchor:     "left",
			X:           0,
		},
	}

	// Level-1 capability titles sit left of the axis, one per header row.
	for _, hdr := range yAxis.HeaderKeys {
		l1 := strings.TrimPrefix(hdr, yHeaderPrefix)
		layout.Annotations = append(layout.Annotations, Annotation{
			XRef:      "paper",
			YRef:      "y",
			X:         0.0,
			Y:         hdr,
			Text:      "<b>" + htmlBreaks(WrapLines(l1, 38, 3)) + "</b>",
			ShowArrow: false,
			XAnchor:   "right",
			YAnchor:   "middle",
			Align:     "right",
			Font:      Font{Size: 13},
			BGColor:   "rgba(0,0,0,0)",
		})
	}

	// Outcome-tier block titles below the tick labels, centered over their
	// columns. Empty tiers get no title.
	n := len(xAxis.Order) - 1
	if n < 1 {
		n = 1
	}
	for _, tier := range evidence.TierOrder {
		items := itemsByTier[tier]
		if len(items) == 0 {
			continue
		}
		first := indexOf(xAxis.Order, items[0])
		last := indexOf(xAxis.Order, items[len(items)-1])
		if first < 0 || last < 0 {
			continue
		}
		layout.Annotations = append(layout.Annotations, Annotation{
			XRef:      "x domain",
			YRef:      "paper",
			X:         float64(first+last) / 2 / float64(n),
			Y:         -0.25,
			Text:      "<b>" + tier + "</b>",
			ShowArrow: false,
			XAnchor:   "left",
			YAnchor:   "bottom",
			Font:      Font{Size: 14},
		})
	}
	return layout
}

// htmlBreaks converts wrapped label newlines into the <br> breaks Plotly
// renders in tick and annotation text.
func htmlBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}

func htmlBreaksAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = htmlBreaks(s)
	}
	return out
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
