package model

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// HTTPSource downloads <BaseURL>/<name><Ext> into Dir. The file is written
// to a temp file and renamed, so a DirStore over the same Dir never sees a
// partial model.
type HTTPSource struct {
	BaseURL string
	Dir     string
	Ext     string
	Client  *http.Client // nil => http.DefaultClient
}

var _ Source = (*HTTPSource)(nil)

func (s *HTTPSource) Download(ctx context.Context, name string) (Model, error) {
	u, err := url.JoinPath(s.BaseURL, name+coalesceExt(s.Ext))
	if err != nil {
		return Model{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Model{}, err
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Model{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Model{}, fmt.Errorf("GET %s: %s", u, resp.Status)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return Model{}, err
	}
	tmp, err := os.CreateTemp(s.Dir, name+".*.part")
	if err != nil {
		return Model{}, err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Model{}, err
	}
	if n == 0 {
		return Model{Name: name}, nil // Loader reports ErrEmptyModel
	}

	dst := DirStore{Dir: s.Dir, Ext: s.Ext}.Path(name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return Model{}, err
	}
	return Model{Name: name, Path: filepath.Clean(dst)}, nil
}
