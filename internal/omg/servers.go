package omg

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// PropertyServerIndex — имя свойства выбора сервера
const PropertyServerIndex = "server_index"

// ResolveBaseURL выбирает ровно один базовый URL из списка серверов документа.
// Пустой список даёт пустой URL: тогда сервер должен быть задан на уровне пути.
func ResolveBaseURL(servers openapi3.Servers, props Properties) (string, error) {
	count := len(servers)
	if count > 1 && props.ServerIndex == nil {
		return "", conversionErrorf(
			"The property %s must be set when the OpenAPI spec contains more than 1 server. Found %d entries.",
			PropertyServerIndex, count)
	}

	if count == 0 {
		return "", nil
	}

	index := 0
	if props.ServerIndex != nil {
		index = *props.ServerIndex
	}
	if index < 0 || index > count-1 {
		return "", conversionErrorf(
			"Invalid value set for property %s. Min: 0, max: %d, got: %d",
			PropertyServerIndex, count-1, index)
	}

	selected := servers[index]
	if selected == nil {
		return "", conversionErrorf("Server entry %d is empty", index)
	}
	if len(selected.Variables) > 0 {
		return "", conversionErrorf("Variables in the server object are not supported at this time")
	}

	return selected.URL, nil
}
