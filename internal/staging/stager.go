package staging

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
)

var (
	ErrTooLarge  = fmt.Errorf("%w: request body too large", usecase.ErrValidation)
	ErrMalformed = fmt.Errorf("%w: malformed multipart body", usecase.ErrValidation)
)

// Stager streams the file parts of a multipart request to a local directory.
type Stager struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxBytes int64) *Stager {
	return &Stager{dir: dir, maxBytes: maxBytes}
}

// IsMultipart reports whether r carries a multipart/form-data body.
func IsMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// Stage writes the parts named in fields to disk and exposes the plain form values through
// r.FormValue. Parts not listed are discarded. On error nothing stays on disk.
func (s *Stager) Stage(w http.ResponseWriter, r *http.Request, fields ...string) (map[string]*port.StagedFile, error) {
	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	if s.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)
	}
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	staged := make(map[string]*port.StagedFile)
	values := url.Values{}
	fail := func(err error) (map[string]*port.StagedFile, error) {
		RemoveAll(staged)
		return nil, err
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fail(classify(err))
		}

		name := part.FormName()
		switch {
		case part.FileName() == "":
			v, err := io.ReadAll(io.LimitReader(part, 1<<20))
			if err != nil {
				return fail(classify(err))
			}
			values.Add(name, string(v))
		case wanted[name] && staged[name] == nil:
			f, err := s.write(part)
			if err != nil {
				return fail(classify(err))
			}
			staged[name] = f
		default:
			if _, err := io.Copy(io.Discard, part); err != nil {
				return fail(classify(err))
			}
		}
		_ = part.Close()
	}

	r.Form = values
	r.PostForm = values
	r.MultipartForm = &multipart.Form{Value: values}
	return staged, nil
}

func (s *Stager) write(part *multipart.Part) (*port.StagedFile, error) {
	ext := strings.ToLower(filepath.Ext(part.FileName()))
	tmp, err := os.CreateTemp(s.dir, "staged-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("%w: create staged file: %v", usecase.ErrUpstream, err)
	}
	f := &port.StagedFile{Path: tmp.Name(), Filename: filepath.Base(part.FileName())}

	n, err := io.Copy(tmp, part)
	cErr := tmp.Close()
	if err == nil {
		err = cErr
	}
	if err != nil {
		_ = f.Remove()
		return nil, err
	}
	f.Size = n
	return f, nil
}

// RemoveAll deletes every staged file still on disk.
func RemoveAll(files map[string]*port.StagedFile) []error {
	var errs []error
	for _, f := range files {
		if err := f.Remove(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func classify(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return ErrTooLarge
	}
	if errors.Is(err, ErrTooLarge) || errors.Is(err, ErrMalformed) || errors.Is(err, usecase.ErrUpstream) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}
