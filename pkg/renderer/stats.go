package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats contains the share of a render handled by one worker
type WorkerStats struct {
	ID         int
	Rows       int
	Samples    int
	RenderTime time.Duration // Sum of the worker's row render times
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera samples taken
	Workers         []WorkerStats // Per-worker breakdown, ordered by ID
	RenderTime      time.Duration // Wall-clock time for the whole image
}

// AverageSamples returns the average samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// addRow folds a finished row into the statistics
func (s *RenderStats) addRow(result RowResult) {
	s.TotalPixels += len(result.Pixels)
	s.TotalSamples += result.Samples

	for i := range s.Workers {
		if s.Workers[i].ID == result.WorkerID {
			s.Workers[i].Rows++
			s.Workers[i].Samples += result.Samples
			s.Workers[i].RenderTime += result.Duration
			return
		}
	}
	s.Workers = append(s.Workers, WorkerStats{
		ID:         result.WorkerID,
		Rows:       1,
		Samples:    result.Samples,
		RenderTime: result.Duration,
	})
	sort.Slice(s.Workers, func(i, j int) bool { return s.Workers[i].ID < s.Workers[j].ID })
}

// Table renders the per-worker statistics as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Samples", "Render time"})
	for _, worker := range s.Workers {
		percent := 0.0
		if s.Height > 0 {
			percent = 100 * float64(worker.Rows) / float64(s.Height)
		}
		table.Append([]string{
			fmt.Sprintf("%d", worker.ID),
			fmt.Sprintf("%d", worker.Rows),
			fmt.Sprintf("%02.1f %%", percent),
			fmt.Sprintf("%d", worker.Samples),
			worker.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%dx%d", s.Width, s.Height),
		fmt.Sprintf("%d", s.Height),
		fmt.Sprintf("%.1f spp", s.AverageSamples()),
		fmt.Sprintf("%d", s.TotalSamples),
		s.RenderTime.String(),
	})
	table.Render()
	return buf.String()
}
