package omg

import (
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var pathTokenRe = regexp.MustCompile(`[A-Za-z0-9{}]*`)

// ActionName возвращает имя действия для пары путь+метод.
// Явный operationId всегда в приоритете, иначе имя синтезируется:
// GET /pets/{petId}/owners/{ownerId} -> getPetsByPetIdOwnersAndOwnerId
func ActionName(path, method string, op *openapi3.Operation) string {
	if op != nil && op.OperationID != "" {
		return op.OperationID
	}
	return synthesizeName(path, method)
}

func synthesizeName(path, method string) string {
	var sb strings.Builder
	sb.WriteString(method)

	seenParam := false
	for _, token := range pathTokenRe.FindAllString(path, -1) {
		if token == "" {
			continue
		}

		var fragment string
		if isPlaceholder(token) {
			prefix := "By"
			if seenParam {
				prefix = "And"
			}
			seenParam = true
			fragment = prefix + capitalize(token[1:len(token)-1])
		} else {
			fragment = capitalize(token)
		}

		sb.WriteString(sanitizeName(fragment))
	}

	return sb.String()
}

func isPlaceholder(token string) bool {
	return len(token) >= 2 && strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}")
}

// capitalize поднимает регистр только первой руны, остальное не трогает
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	titleCaser := cases.Title(language.English, cases.NoLower)
	runes := []rune(s)
	return titleCaser.String(string(runes[0])) + string(runes[1:])
}

// sanitizeName оставляет только ASCII буквы и цифры
func sanitizeName(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
