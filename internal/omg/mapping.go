package omg

// Таблицы соответствия словаря OpenAPI словарю OMG. Только чтение.
var (
	typeMapping = map[string]string{
		"integer": "int",
		"number":  "number",
		"string":  "string",
		"boolean": "boolean",
		"array":   "list",
		"object":  "object",
	}

	// header пока не представим в OMG, дальше по цепочке на него не полагаться
	locationMapping = map[string]string{
		"query":  "query",
		"path":   "path",
		"header": "header",
	}
)

// TargetType возвращает OMG-тип для примитивного типа OpenAPI
func TargetType(openapiType string) (string, error) {
	if t, ok := typeMapping[openapiType]; ok {
		return t, nil
	}
	return "", &MappingError{Kind: "type", Value: openapiType}
}

// TargetLocation возвращает OMG-расположение для поля "in" параметра OpenAPI
func TargetLocation(in string) (string, error) {
	if l, ok := locationMapping[in]; ok {
		return l, nil
	}
	return "", &MappingError{Kind: "location", Value: in}
}
