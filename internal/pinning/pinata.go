package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"landapi/internal/config"
)

const providerPinata = "pinata"

// pinataResponse is the subset of the pinFileToIPFS reply we use.
type pinataResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// Pinata pins files through Pinata's pinFileToIPFS endpoint.
type Pinata struct {
	endpoint string
	jwt      string
	client   *http.Client
}

// NewPinata creates a Pinata client. client may be nil, in which case a
// client with an instrumented default transport is used.
func NewPinata(cfg config.PinataConfig, client *http.Client) (*Pinata, error) {
	if cfg.JWT == "" {
		return nil, fmt.Errorf("pinata jwt is required")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultPinataEndpoint
	}
	if client == nil {
		client = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	return &Pinata{endpoint: endpoint, jwt: cfg.JWT, client: client}, nil
}

var _ Pinner = (*Pinata)(nil)

// Pin uploads data as the multipart field "file".
func (p *Pinata) Pin(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	body, formType, err := multipartFile(data, fileName, contentType)
	if err != nil {
		return "", &Error{Provider: providerPinata, Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, body)
	if err != nil {
		return "", &Error{Provider: providerPinata, Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", formType)
	req.Header.Set("Authorization", "Bearer "+p.jwt)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &Error{Provider: providerPinata, Op: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &Error{Provider: providerPinata, Op: "pin", Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var out pinataResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &Error{Provider: providerPinata, Op: "decode", Status: resp.StatusCode, Err: err}
	}
	if err := validateCID(out.IpfsHash); err != nil {
		return "", &Error{Provider: providerPinata, Op: "decode", Status: resp.StatusCode, Err: err}
	}
	return out.IpfsHash, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartFile builds a form with a single "file" part that carries the
// caller's content type instead of multipart.Writer's octet-stream default.
func multipartFile(data []byte, fileName, contentType string) (io.Reader, string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(fileName)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
