package charts

// Historical-rate line chart rendering. The chart is rasterized with gg at
// a fixed 800x400 and encoded to an in-memory PNG buffer; nothing touches
// the filesystem.

import (
	"bytes"
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"currency-bot/internal/clients_api/frankfurter"

	"github.com/fogleman/gg"
)

const (
	chartWidth  = 800
	chartHeight = 400

	chartAreaLeft   = 70.0
	chartAreaRight  = chartWidth - 25.0
	chartAreaTop    = 45.0
	chartAreaBottom = chartHeight - 45.0

	maxDateLabels = 6
)

var seriesColor = color.RGBA{R: 255, A: 255}

// RenderRateChart draws the currency→USD series as a single smoothed red
// line with a non-zero-based Y axis and returns the encoded PNG.
// Labels come out in ascending date order, which for the provider's ISO
// dates is exactly the response order.
func RenderRateChart(series *frankfurter.HistoryResponse, currencyLabel string) ([]byte, error) {
	if series == nil || len(series.Rates) == 0 {
		return nil, fmt.Errorf("no rate data points available")
	}

	dates := make([]string, 0, len(series.Rates))
	for date, values := range series.Rates {
		if _, ok := values["USD"]; ok {
			dates = append(dates, date)
		}
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("no USD values in rate series")
	}
	sort.Strings(dates)

	values := make([]float64, len(dates))
	minValue, maxValue := series.Rates[dates[0]]["USD"], series.Rates[dates[0]]["USD"]
	for i, date := range dates {
		v := series.Rates[date]["USD"]
		values[i] = v
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}

	// Non-zero-based Y axis: pad the observed range slightly so the line
	// never sits on the frame.
	valueRange := maxValue - minValue
	if valueRange == 0 {
		valueRange = maxValue * 0.02
		if valueRange == 0 {
			valueRange = 1
		}
	}
	minY := minValue - valueRange*0.1
	maxY := maxValue + valueRange*0.1

	dc := gg.NewContext(chartWidth, chartHeight)

	dc.SetColor(color.White)
	dc.Clear()

	drawFrame(dc)
	drawYLabels(dc, minY, maxY)
	drawXLabels(dc, dates)

	// Series line with slight smoothing: quadratic segments through the
	// midpoints instead of straight point-to-point strokes.
	dc.SetColor(seriesColor)
	dc.SetLineWidth(2)
	points := make([][2]float64, len(values))
	for i := range values {
		points[i] = [2]float64{xPos(i, len(values)), yPos(values[i], minY, maxY)}
	}
	if len(points) == 1 {
		dc.DrawCircle(points[0][0], points[0][1], 3)
		dc.Fill()
	} else {
		dc.MoveTo(points[0][0], points[0][1])
		for i := 1; i < len(points)-1; i++ {
			midX := (points[i][0] + points[i+1][0]) / 2
			midY := (points[i][1] + points[i+1][1]) / 2
			dc.QuadraticTo(points[i][0], points[i][1], midX, midY)
		}
		dc.LineTo(points[len(points)-1][0], points[len(points)-1][1])
		dc.Stroke()
	}

	// Legend text, top left.
	dc.SetColor(seriesColor)
	dc.DrawString(currencyLabel+"/USD", chartAreaLeft, chartAreaTop-15)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart PNG: %w", err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("chart buffer is empty after rendering")
	}

	return buf.Bytes(), nil
}

func drawFrame(dc *gg.Context) {
	dc.SetColor(color.Black)
	dc.SetLineWidth(2)
	dc.DrawLine(chartAreaLeft, chartAreaBottom, chartAreaRight, chartAreaBottom)
	dc.Stroke()
	dc.DrawLine(chartAreaLeft, chartAreaTop, chartAreaLeft, chartAreaBottom)
	dc.Stroke()
}

func drawYLabels(dc *gg.Context, minY, maxY float64) {
	const steps = 5
	for i := 0; i <= steps; i++ {
		value := minY + (maxY-minY)*float64(i)/steps
		y := yPos(value, minY, maxY)

		dc.SetColor(color.RGBA{R: 200, G: 200, B: 200, A: 255})
		dc.SetLineWidth(1)
		dc.SetDash(4, 4)
		dc.DrawLine(chartAreaLeft, y, chartAreaRight, y)
		dc.Stroke()
		dc.SetDash()

		label := strconv.FormatFloat(value, 'g', 5, 64)
		dc.SetColor(color.Black)
		w, _ := dc.MeasureString(label)
		dc.DrawString(label, chartAreaLeft-w-8, y+4)
	}
}

func drawXLabels(dc *gg.Context, dates []string) {
	step := 1
	if len(dates) > maxDateLabels {
		step = (len(dates) + maxDateLabels - 1) / maxDateLabels
	}

	dc.SetColor(color.Black)
	for i := 0; i < len(dates); i += step {
		x := xPos(i, len(dates))
		dc.SetLineWidth(2)
		dc.DrawLine(x, chartAreaBottom, x, chartAreaBottom+6)
		dc.Stroke()

		w, _ := dc.MeasureString(dates[i])
		dc.DrawString(dates[i], x-w/2, chartAreaBottom+22)
	}
}

func xPos(i, n int) float64 {
	if n <= 1 {
		return (chartAreaLeft + chartAreaRight) / 2
	}
	return chartAreaLeft + (chartAreaRight-chartAreaLeft)*float64(i)/float64(n-1)
}

func yPos(value, minY, maxY float64) float64 {
	return chartAreaBottom - (chartAreaBottom-chartAreaTop)*(value-minY)/(maxY-minY)
}
