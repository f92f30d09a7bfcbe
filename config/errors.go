package config

import "strings"

type MissingEnvVariableError struct {
	Names []string
}

func (m *MissingEnvVariableError) Error() string {
	if len(m.Names) == 0 {
		return "missing environment variable for config"
	}

	return "missing environment variable for config: " + strings.Join(m.Names, ", ")
}
