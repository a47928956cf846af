package parser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// Parse загружает OpenAPI спецификацию из файла, URL или stdin ("-")
// и разрешает все $ref, включая внешние.
func Parse(ctx context.Context, source string, opts *ParseOptions) (*openapi3.T, error) {
	if opts == nil {
		opts = &ParseOptions{}
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true

	var doc *openapi3.T
	var err error

	switch {
	case source == StdinSource:
		doc, err = loadFromReader(loader, opts.stdin())
	case isURL(source):
		doc, err = loadFromURL(ctx, loader, source, opts.timeout())
	default:
		doc, err = loader.LoadFromFile(source)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}

	if !opts.SkipValidation {
		// contact в корне документа нестандартный, но конвертер его читает
		if err := doc.Validate(ctx, openapi3.AllowExtraSiblingFields("contact")); err != nil {
			return nil, fmt.Errorf("invalid OpenAPI spec: %w\n\nUse --skip-validation to ignore validation errors", err)
		}
	}

	return doc, nil
}

func loadFromReader(loader *openapi3.Loader, r io.Reader) (*openapi3.T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return loader.LoadFromData(data)
}

func loadFromURL(ctx context.Context, loader *openapi3.Loader, rawURL string, timeout time.Duration) (*openapi3.T, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	// Скачиваем файл
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// относительные $ref разрешаются от URL документа
	return loader.LoadFromDataWithPath(data, u)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func (o *ParseOptions) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

func (o *ParseOptions) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultTimeout
}
