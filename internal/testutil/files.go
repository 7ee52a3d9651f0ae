package testutil

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/port"
)

// GeneratePNG encodes a plain white image of the given size.
func GeneratePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

// GenerateMP4 builds an MP4 holding only ftyp and a moov/mvhd header announcing the given
// duration in seconds at a 1000 Hz timescale.
func GenerateMP4(seconds float64) []byte {
	buf := new(bytes.Buffer)

	box := func(typ string, payload []byte) []byte {
		b := make([]byte, 8, 8+len(payload))
		binary.BigEndian.PutUint32(b, uint32(8+len(payload)))
		copy(b[4:], typ)
		return append(b, payload...)
	}

	ftyp := []byte("isom\x00\x00\x02\x00isomiso2mp41")
	buf.Write(box("ftyp", ftyp))

	mvhd := make([]byte, 100)
	// version 0, flags 0, creation and modification times 0
	binary.BigEndian.PutUint32(mvhd[12:], 1000)
	binary.BigEndian.PutUint32(mvhd[16:], uint32(seconds*1000))
	binary.BigEndian.PutUint32(mvhd[20:], 0x00010000) // rate 1.0
	binary.BigEndian.PutUint16(mvhd[24:], 0x0100)     // volume 1.0
	// identity matrix
	binary.BigEndian.PutUint32(mvhd[36:], 0x00010000)
	binary.BigEndian.PutUint32(mvhd[52:], 0x00010000)
	binary.BigEndian.PutUint32(mvhd[68:], 0x40000000)
	binary.BigEndian.PutUint32(mvhd[96:], 1) // next track id
	buf.Write(box("moov", box("mvhd", mvhd)))

	return buf.Bytes()
}

// Stage writes data to a temp file the way the multipart stager would.
func Stage(t *testing.T, name string, data []byte) *port.StagedFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write staged file: %v", err)
	}
	return &port.StagedFile{Path: path, Filename: name, Size: int64(len(data))}
}
