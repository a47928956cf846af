// Package omg конвертирует OpenAPI 3.x документ в OMG манифест действий.
//
// Конвертация идёт по фиксированному списку фаз, по одной на секцию корня
// документа. Отсутствие обязательной секции или любая ошибка фазы прерывает
// конвертацию целиком: частичный манифест никогда не возвращается.
package omg

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// CollisionPolicy — что делать, если два действия получили одно имя
type CollisionPolicy string

const (
	// CollisionOverwrite — более позднее действие молча заменяет раннее
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionError — конвертация падает с ConversionError
	CollisionError CollisionPolicy = "error"
)

// Properties — настройки одной конвертации
type Properties struct {
	// ServerIndex выбирает сервер, когда их больше одного. nil — не задан.
	ServerIndex *int
	// OnCollision по умолчанию CollisionOverwrite
	OnCollision CollisionPolicy
}

// phase описывает один шаг конвертации для секции корня документа
type phase struct {
	key      string
	required bool
	present  func(doc *openapi3.T) bool
	consume  func(c *conversion) error
}

// phases — порядок фиксирован, servers обязан идти раньше paths
var phases = []phase{
	{key: "openapi", required: true, present: func(d *openapi3.T) bool { return d.OpenAPI != "" }, consume: consumeVersion},
	{key: "info", required: true, present: func(d *openapi3.T) bool { return d.Info != nil }, consume: consumeInfo},
	{key: "servers", required: false, present: func(d *openapi3.T) bool { return d.Servers != nil }, consume: consumeServers},
	{key: "paths", required: true, present: func(d *openapi3.T) bool { return d.Paths != nil }, consume: consumePaths},
	{key: "components", required: false, present: func(d *openapi3.T) bool { return d.Components != nil }, consume: consumeComponents},
	{key: "security", required: false, present: func(d *openapi3.T) bool { return d.Security != nil }, consume: consumeSecurity},
	{key: "tags", required: false, present: func(d *openapi3.T) bool { return d.Tags != nil }, consume: consumeTags},
	{key: "externalDocs", required: false, present: func(d *openapi3.T) bool { return d.ExternalDocs != nil }, consume: consumeExternalDocs},
}

// conversion хранит состояние одного вызова Convert
type conversion struct {
	doc      *openapi3.T
	props    Properties
	manifest *Manifest
	baseURL  string
	// origins: имя действия -> "METHOD path", для сообщений о коллизиях
	origins map[string]string
}

// Convert строит OMG манифест из документа с уже разрешёнными $ref.
// Документ не изменяется. При ошибке манифест не возвращается.
func Convert(doc *openapi3.T, props Properties) (*Manifest, error) {
	if doc == nil {
		return nil, conversionErrorf("OpenAPI document is nil")
	}
	if props.OnCollision == "" {
		props.OnCollision = CollisionOverwrite
	}

	c := &conversion{
		doc:      doc,
		props:    props,
		manifest: newManifest(),
		origins:  make(map[string]string),
	}

	for _, p := range phases {
		if !p.present(doc) {
			if p.required {
				return nil, conversionErrorf("OpenAPI field %s not found in the root", p.key)
			}
			continue
		}
		if err := p.consume(c); err != nil {
			return nil, err
		}
	}

	return c.manifest, nil
}

func consumeVersion(c *conversion) error {
	if c.doc.OpenAPI[0] != '3' {
		return conversionErrorf("Only OpenAPI version 3 is supported")
	}
	c.manifest.FromOpenAPIVersion = c.doc.OpenAPI
	return nil
}

func consumeInfo(c *conversion) error {
	info := c.doc.Info
	c.manifest.Info = Info{
		Version:     info.Version,
		Title:       info.Title,
		Description: info.Description,
	}
	if info.License != nil {
		c.manifest.Info.License = License{
			Name: info.License.Name,
			URL:  info.License.URL,
		}
	}

	// contact читается из корня документа, не из info.contact.
	// В корне это поле нестандартное, kin-openapi кладёт его в Extensions.
	contact := rootObject(c.doc, "contact")
	c.manifest.Contact = Contact{
		Name:  stringField(contact, "name"),
		URL:   stringField(contact, "url"),
		Email: stringField(contact, "email"),
	}
	return nil
}

func consumeServers(c *conversion) error {
	baseURL, err := ResolveBaseURL(c.doc.Servers, c.props)
	if err != nil {
		return err
	}
	c.baseURL = baseURL
	return nil
}

// Секции ниже пока не переносятся в OMG, фазы оставлены для будущих расширений.

func consumeComponents(*conversion) error   { return nil }
func consumeSecurity(*conversion) error     { return nil }
func consumeTags(*conversion) error         { return nil }
func consumeExternalDocs(*conversion) error { return nil }

func rootObject(doc *openapi3.T, key string) map[string]any {
	if doc.Extensions == nil {
		return nil
	}
	obj, _ := doc.Extensions[key].(map[string]any)
	return obj
}

func stringField(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	switch v := obj[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
