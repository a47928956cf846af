package omg

import (
	"net/url"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// operationMethods — поля Path Item Object в порядке спецификации OpenAPI.
// Токен метода берётся в том виде, в каком он записан в документе.
var operationMethods = []struct {
	method string
	get    func(*openapi3.PathItem) *openapi3.Operation
}{
	{"get", func(p *openapi3.PathItem) *openapi3.Operation { return p.Get }},
	{"put", func(p *openapi3.PathItem) *openapi3.Operation { return p.Put }},
	{"post", func(p *openapi3.PathItem) *openapi3.Operation { return p.Post }},
	{"delete", func(p *openapi3.PathItem) *openapi3.Operation { return p.Delete }},
	{"options", func(p *openapi3.PathItem) *openapi3.Operation { return p.Options }},
	{"head", func(p *openapi3.PathItem) *openapi3.Operation { return p.Head }},
	{"patch", func(p *openapi3.PathItem) *openapi3.Operation { return p.Patch }},
	{"trace", func(p *openapi3.PathItem) *openapi3.Operation { return p.Trace }},
}

func consumePaths(c *conversion) error {
	actions := make(map[string]Action)
	c.manifest.Actions = actions

	items := c.doc.Paths.Map()
	paths := make([]string, 0, len(items))
	for path := range items {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := items[path]
		if item == nil {
			continue
		}
		for _, m := range operationMethods {
			op := m.get(item)
			if op == nil {
				continue
			}

			name := ActionName(path, m.method, op)
			action, err := c.toAction(path, m.method, item)
			if err != nil {
				return err
			}

			origin := m.method + " " + path
			if prev, exists := c.origins[name]; exists && c.props.OnCollision == CollisionError {
				return &ConversionError{
					Path:    path,
					Message: "Action name \"" + name + "\" derived for " + origin + " is already used by " + prev,
				}
			}
			c.origins[name] = origin
			actions[name] = action
		}
	}

	return nil
}

func (c *conversion) toAction(path, method string, item *openapi3.PathItem) (Action, error) {
	baseURL := c.baseURL

	if len(item.Servers) > 0 {
		if len(item.Servers) > 1 {
			return Action{}, &ConversionError{
				Path: path,
				Message: "Multiple server endpoints were found for the path \"" + path +
					"\". Only zero or one entries are supported.",
			}
		}
		if item.Servers[0] != nil {
			baseURL = item.Servers[0].URL
		}
	}

	rawURL := JoinURL(baseURL, path)
	if err := validateScheme(path, rawURL); err != nil {
		return Action{}, err
	}

	return Action{
		Help: "",
		HTTP: HTTP{
			Port:   0,
			Method: method,
			Path:   rawURL,
		},
	}, nil
}

// JoinURL склеивает базовый URL и шаблон пути как есть.
// Двойные слэши не схлопываются: "https://x/" + "/pets" -> "https://x//pets".
func JoinURL(baseURL, path string) string {
	return baseURL + path
}

func validateScheme(path, rawURL string) error {
	invalid := &ConversionError{
		Path: path,
		Message: "The URL for the path \"" + path + "\" is invalid. Derived value is \"" +
			rawURL + "\" (must have http(s) as the scheme)",
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		invalid.Cause = err
		return invalid
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return invalid
	}
	return nil
}
