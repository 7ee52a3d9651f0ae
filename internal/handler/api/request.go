package api

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/fhuszti/videotube-ms-go/internal/api_context"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

const maxJSONBody = 1 << 20

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := api_context.IDFromContext(r.Context())
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "ID is required", nil)
	}
	return id, ok
}

func pathSubID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := api_context.SubIDFromContext(r.Context())
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "Sub ID is required", nil)
	}
	return id, ok
}

func principal(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := api_context.AuthUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, r, http.StatusUnauthorized, "Unauthorized request", nil)
	}
	return id, ok
}

// readFields returns the string fields of a JSON, urlencoded or already staged multipart body.
func readFields(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	fields := map[string]string{}
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mt {
	case "application/json":
		var raw map[string]any
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: malformed JSON body", usecase.ErrValidation)
		}
		for k, v := range raw {
			if s, ok := v.(string); ok {
				fields[k] = s
			}
		}
	case "multipart/form-data":
		// WithStagedFiles already consumed the body into r.Form.
		for k, v := range r.Form {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
	default:
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: malformed form body", usecase.ErrValidation)
		}
		for k := range r.PostForm {
			fields[k] = r.PostForm.Get(k)
		}
	}
	return fields, nil
}

func pageFromQuery(r *http.Request) port.Page {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return port.NewPage(page, limit)
}
