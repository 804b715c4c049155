package constants

import (
	"os"
	"strings"
)

// GetModesPath is an optional YAML file of extra modes; empty means built-ins only.
func GetModesPath() string {
	return os.Getenv("SCALEDEX_MODES_PATH")
}

func GetAddr() string {
	addr := os.Getenv("SCALEDEX_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetAllowedOrigins() []string {
	origins := os.Getenv("SCALEDEX_ALLOWED_ORIGINS")
	if origins == "" {
		return []string{"*"}
	}
	var res []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

const DefaultMode = "ionian"
