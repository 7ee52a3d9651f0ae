package storage

import (
	"fmt"
	"io"

	mp4 "github.com/abema/go-mp4"
)

// mp4Duration reads the movie header of an MP4/MOV stream. Fragmented files without a
// movie duration fall back to their longest track.
func mp4Duration(r io.ReadSeeker) (float64, error) {
	info, err := mp4.Probe(r)
	if err != nil {
		return 0, fmt.Errorf("probe mp4: %w", err)
	}
	if info.Timescale > 0 && info.Duration > 0 {
		return float64(info.Duration) / float64(info.Timescale), nil
	}

	var longest float64
	for _, tr := range info.Tracks {
		if tr.Timescale == 0 {
			continue
		}
		if d := float64(tr.Duration) / float64(tr.Timescale); d > longest {
			longest = d
		}
	}
	return longest, nil
}
