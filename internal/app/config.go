package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/nuetzliches/objname/internal/namecodec"
	"github.com/nuetzliches/objname/internal/objectname"
)

const (
	envLogLevel        = "OBJNAME_LOG_LEVEL"
	envDomain          = "OBJNAME_DOMAIN"
	envDecodePolicy    = "OBJNAME_DECODE_POLICY"
	envTracingEndpoint = "OBJNAME_TRACING_ENDPOINT"
)

// settings are the values shared by commands after flags, the optional
// dotenv file and the environment have been merged. Explicit flags win over
// the environment.
type settings struct {
	LogLevel        string
	Domain          string
	Policy          namecodec.Policy
	TracingEndpoint string
}

func resolveSetting(flagValue, envKey, fallback string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return fallback
}

// resolveSettings loads dotenvPath (if set) before reading the environment.
// strict forces the Strict policy regardless of OBJNAME_DECODE_POLICY.
func resolveSettings(dotenvPath, logLevel, domain, tracingEndpoint string, strict bool) (settings, error) {
	if p := strings.TrimSpace(dotenvPath); p != "" {
		if err := loadDotenv(p); err != nil {
			return settings{}, fmt.Errorf("load dotenv %q: %w", p, err)
		}
	}

	s := settings{
		LogLevel:        resolveSetting(logLevel, envLogLevel, "info"),
		Domain:          resolveSetting(domain, envDomain, objectname.DefaultDomain),
		TracingEndpoint: resolveSetting(tracingEndpoint, envTracingEndpoint, ""),
	}
	if strict {
		s.Policy = namecodec.Strict
		return s, nil
	}
	p, err := namecodec.ParsePolicy(os.Getenv(envDecodePolicy))
	if err != nil {
		return settings{}, fmt.Errorf("%s: %w", envDecodePolicy, err)
	}
	s.Policy = p
	return s, nil
}
