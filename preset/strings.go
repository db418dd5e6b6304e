package preset

import (
	"encoding/base64"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gqlkit/directives"
)

// UpperCase converts the resolved string to upper case.
func UpperCase() *directives.Directive {
	return transformString("toUpperCase", "Converts the resolved string to upper case.", strings.ToUpper)
}

// LowerCase converts the resolved string to lower case.
func LowerCase() *directives.Directive {
	return transformString("toLowerCase", "Converts the resolved string to lower case.", strings.ToLower)
}

// TitleCase converts the resolved string to Title Case.
func TitleCase() *directives.Directive {
	caser := cases.Title(language.English)
	return transformString("toTitleCase", "Converts the resolved string to Title Case.", caser.String)
}

// CamelCase converts the resolved string to lowerCamelCase.
func CamelCase() *directives.Directive {
	return transformString("camelCase", "Converts the resolved string to lowerCamelCase.", strcase.ToLowerCamel)
}

// SnakeCase converts the resolved string to snake_case.
func SnakeCase() *directives.Directive {
	return transformString("snakeCase", "Converts the resolved string to snake_case.", strcase.ToSnake)
}

// KebabCase converts the resolved string to kebab-case.
func KebabCase() *directives.Directive {
	return transformString("kebabCase", "Converts the resolved string to kebab-case.", strcase.ToKebab)
}

// Trim removes leading and trailing whitespace from the resolved string.
func Trim() *directives.Directive {
	return transformString("trim", "Removes leading and trailing whitespace from the resolved string.", strings.TrimSpace)
}

// Base64 encodes the resolved string with standard base64.
func Base64() *directives.Directive {
	return transformString("base64", "Encodes the resolved string with standard base64.", func(s string) string {
		return base64.StdEncoding.EncodeToString([]byte(s))
	})
}
