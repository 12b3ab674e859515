package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR} references; the optional leading $$ marks an
// escaped reference that must survive substitution literally.
var envVarPattern = regexp.MustCompile(`\$(\$?)\{([^}]+)\}`)

// SubstituteEnvVars replaces environment variable references in YAML content.
// Supported forms:
//   - ${VAR}          basic substitution
//   - ${VAR:-default} use default if VAR is empty or unset
//   - ${VAR:?message} error if VAR is empty or unset
//   - $${VAR}         escape, yields literal ${VAR}
func SubstituteEnvVars(content string) (string, error) {
	var substErr error

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		if groups[1] == "$" {
			return "${" + groups[2] + "}"
		}

		expr := groups[2]
		if name, message, ok := strings.Cut(expr, ":?"); ok {
			name = strings.TrimSpace(name)
			value := os.Getenv(name)
			if value == "" {
				message = strings.TrimSpace(message)
				if message == "" {
					message = fmt.Sprintf("required environment variable %s is not set", name)
				}
				substErr = errors.New(message)
			}
			return value
		}

		if name, fallback, ok := strings.Cut(expr, ":-"); ok {
			if value := os.Getenv(strings.TrimSpace(name)); value != "" {
				return value
			}
			return strings.TrimSpace(fallback)
		}

		return os.Getenv(expr)
	})

	if substErr != nil {
		return result, substErr
	}
	return result, nil
}
