package renderer

import (
	"encoding/json"
	"fmt"
	"hash/crc32"
	"net/http"
)

// ETag returns the quoted CRC32 checksum of raw.
func ETag(raw []byte) string {
	return fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
}

// JSON encodes v and writes it with an ETag derived from the encoded bytes. A request whose
// If-None-Match already carries that ETag gets an empty 304 instead.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	etag := ETag(raw)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "private, no-cache")

	if status == http.StatusOK && r.Method == http.MethodGet && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(append(raw, '\n'))
	return err
}
