package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/flapboard/pkg/errors"
	"github.com/matzehuels/flapboard/pkg/palette"
	"github.com/matzehuels/flapboard/pkg/pipeline"
)

const helloDoc = `{"type":"doc","content":[
	{"type":"paragraph","content":[
		{"type":"text","text":"HI "},
		{"type":"variable","attrs":{"pluginId":"weather","field":"temp","maxLength":3}},
		{"type":"fillSpace","attrs":{"id":"f1"}},
		{"type":"colorTile","attrs":{"color":"red","code":63}}
	]}
]}`

const longDoc = `{"type":"doc","content":[
	{"type":"paragraph","content":[{"type":"text","text":"OK"}]},
	{"type":"paragraph","content":[{"type":"text","text":"THIS LINE IS FAR TOO LONG"}]}
]}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := httptest.NewServer(New(pipeline.NewRunner(nil, nil, nil, logger), logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if got := decode[ErrorResponse](t, resp); got.Code != errors.ErrCodeNotFound {
		t.Errorf("code = %q, want %q", got.Code, errors.ErrCodeNotFound)
	}
}

func TestMeasure(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv.URL+"/v1/measure", longDoc)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	got := decode[MeasureResponse](t, resp)
	if got.Columns != 22 || got.MaxRows != 6 || got.TooManyRows {
		t.Errorf("header = %d/%d/%v, want 22/6/false", got.Columns, got.MaxRows, got.TooManyRows)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(got.Rows))
	}
	if got.Rows[0].Overflow || got.Rows[0].Length != 2 {
		t.Errorf("row 0 = %+v, want length 2 without overflow", got.Rows[0])
	}
	if !got.Rows[1].Overflow || got.Rows[1].Amount != 3 {
		t.Errorf("row 1 = %+v, want overflow by 3", got.Rows[1])
	}
}

func TestEncode(t *testing.T) {
	srv := newTestServer(t)
	body := `{"document":` + helloDoc + `,"values":{"weather.temp":"72"}}`
	resp := post(t, srv.URL+"/v1/encode", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	got := decode[EncodeResponse](t, resp)
	if len(got.Rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(got.Rows))
	}
	// H I space 7 2 blank, 15 blanks of fill, red.
	want := []palette.Code{8, 9, 0, 33, 28, 0}
	for range 15 {
		want = append(want, 0)
	}
	want = append(want, 63)
	if diff := cmp.Diff(want, got.Rows[0]); diff != "" {
		t.Errorf("row 0 mismatch (-want +got):\n%s", diff)
	}
	if got.Preview[0] != "HI 72                #" {
		t.Errorf("preview = %q", got.Preview[0])
	}
	if got.BoardHash == "" {
		t.Error("boardHash is empty")
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   errors.Code
	}{
		{"overflow", `{"document":` + longDoc + `}`, http.StatusUnprocessableEntity, errors.ErrCodeOverflow},
		{"unknown color", `{"document":{"type":"doc","content":[{"type":"paragraph","content":[{"type":"colorTile","attrs":{"color":"mauve"}}]}]}}`, http.StatusUnprocessableEntity, errors.ErrCodeUnknownColor},
		{"unknown node", `{"document":{"type":"doc","content":[{"type":"paragraph","content":[{"type":"image"}]}]}}`, http.StatusUnprocessableEntity, errors.ErrCodeConfiguration},
		{"huge variable", `{"document":{"type":"doc","content":[{"type":"paragraph","content":[{"type":"variable","attrs":{"pluginId":"p","field":"x","maxLength":9223372036854775807}},{"type":"variable","attrs":{"pluginId":"p","field":"y","maxLength":9223372036854775807}}]}]}}`, http.StatusUnprocessableEntity, errors.ErrCodeConfiguration},
		{"bad json", `{"document":`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"missing document", `{}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad value key", `{"document":` + helloDoc + `,"values":{"temp":"1"}}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
	}

	srv := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/v1/encode", tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			got := decode[ErrorResponse](t, resp)
			if got.Code != tt.code {
				t.Errorf("code = %q, want %q (%s)", got.Code, tt.code, got.Message)
			}
			if got.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestPalette(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/palette")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	got := decode[PaletteResponse](t, resp)
	if got.Colors["red"] != 63 {
		t.Errorf("colors[red] = %d, want 63", got.Colors["red"])
	}
	if got.Symbols["heart"] != "<3" {
		t.Errorf("symbols[heart] = %q, want %q", got.Symbols["heart"], "<3")
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidFormat, http.StatusBadRequest},
		{errors.ErrCodeTooManyRows, http.StatusUnprocessableEntity},
		{errors.ErrCodeInvariant, http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
