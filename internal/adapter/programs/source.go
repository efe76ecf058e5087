package programs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/opensource-compass/compassdash/internal/app"
	"gopkg.in/yaml.v3"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

const maxDataSize = 1024 * 1024 * 5

// Source loads program records from a local file or an http(s) url.
// Files with .yaml or .yml extension are decoded as yaml, everything else as json.
// This struct is an adapter for app.ProgramSource.
type Source struct {
	location string
	doer     HTTPDoer
}

var _ app.ProgramSource = &Source{}

// NewSource creates new Source instance.
// doer is used only when location is an url.
func NewSource(location string, doer HTTPDoer) *Source {
	return &Source{
		location: location,
		doer:     doer,
	}
}

// Programs returns all program records.
func (s *Source) Programs(ctx context.Context) ([]app.Program, error) {
	const op = "programs"

	if s.location == "" {
		return nil, app.InvalidRequestError("programs location cannot be empty")
	}

	var data []byte
	var err error
	if isURL(s.location) {
		data, err = s.fetch(ctx)
	} else {
		data, err = s.read()
	}
	if err != nil {
		return nil, err
	}

	programs, err := decode(s.location, data)
	if err != nil {
		return nil, app.NewFetchError(op, app.KindParse, err)
	}

	return programs, nil
}

func (s *Source) read() ([]byte, error) {
	f, err := os.Open(s.location)
	if err != nil {
		return nil, app.NewFetchError("programs", app.KindNetwork, fmt.Errorf("opening file: %w", err))
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxDataSize))
	if err != nil {
		return nil, app.NewFetchError("programs", app.KindNetwork, fmt.Errorf("reading file: %w", err))
	}

	return data, nil
}

func (s *Source) fetch(ctx context.Context) ([]byte, error) {
	if s.doer == nil {
		return nil, app.InvalidRequestError("http doer is required for url locations")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.doer.Do(req)
	if err != nil {
		return nil, app.NewFetchError("programs", app.KindNetwork, fmt.Errorf("doing http request: %w", err))
	}
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return nil, app.NewFetchError("programs", app.KindStatus, fmt.Errorf("got invalid http status code: %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDataSize))
	if err != nil {
		return nil, app.NewFetchError("programs", app.KindNetwork, fmt.Errorf("reading http response body: %w", err))
	}

	return data, nil
}

func decode(location string, data []byte) ([]app.Program, error) {
	var programs []app.Program
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &programs); err != nil {
			return nil, fmt.Errorf("unmarshalling yaml: %w", err)
		}
	default:
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &programs); err != nil {
			return nil, fmt.Errorf("unmarshalling json: %w", err)
		}
	}
	if programs == nil {
		programs = []app.Program{}
	}

	return programs, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
