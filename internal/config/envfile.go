package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFileVar names the variable pointing at an optional dotenv file.
const EnvFileVar = EnvPrefix + "ENV_FILE"

// Environ merges process variables over the dotenv file named by
// EnvFileVar, if any. Process variables win, matching godotenv.Load.
func Environ(process []string) (map[string]string, error) {
	merged := make(map[string]string, len(process))
	for _, kv := range process {
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}

	path := merged[EnvFileVar]
	if path == "" {
		return merged, nil
	}
	fromFile, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	for k, v := range fromFile {
		if _, set := merged[k]; !set {
			merged[k] = v
		}
	}
	return merged, nil
}
