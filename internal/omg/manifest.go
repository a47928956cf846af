package omg

const (
	// FormatVersion — маркер формата OMG
	FormatVersion = 1
	// SourceOpenAPI — значение поля source
	SourceOpenAPI = "openapi"
)

// Manifest представляет итоговый OMG манифест
type Manifest struct {
	OMG                int               `json:"omg" yaml:"omg"`
	Source             string            `json:"source" yaml:"source"`
	FromOpenAPIVersion string            `json:"fromOpenAPIVersion" yaml:"fromOpenAPIVersion"`
	Info               Info              `json:"info" yaml:"info"`
	Contact            Contact           `json:"contact" yaml:"contact"`
	Actions            map[string]Action `json:"actions" yaml:"actions"`
}

// Info — общая информация о сервисе
type Info struct {
	Version     string  `json:"version" yaml:"version"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	License     License `json:"license" yaml:"license"`
}

// License — лицензия сервиса
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Contact — контакты владельца сервиса
type Contact struct {
	Name  string `json:"name" yaml:"name"`
	URL   string `json:"url" yaml:"url"`
	Email string `json:"email" yaml:"email"`
}

// Action представляет одну HTTP операцию
type Action struct {
	Help string `json:"help" yaml:"help"`
	HTTP HTTP   `json:"http" yaml:"http"`
}

// HTTP — как вызывать действие.
// Port пока всегда 0, Path — абсолютный URL, а не шаблон пути.
type HTTP struct {
	Port   int    `json:"port" yaml:"port"`
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
}

func newManifest() *Manifest {
	return &Manifest{
		OMG:    FormatVersion,
		Source: SourceOpenAPI,
	}
}
