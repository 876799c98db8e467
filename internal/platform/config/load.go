package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// vaultEnv maps the Vault CLI's own variables onto the Vault backend keys so
// an operator's existing VAULT_ADDR and VAULT_TOKEN work unchanged. APP_
// variables still win.
var vaultEnv = map[string]string{
	"VAULT_ADDR":  "kms.vault.address",
	"VAULT_TOKEN": "kms.vault.token",
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	environ   func() []string
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// WithEnviron replaces os.Environ as the source of environment overrides.
func WithEnviron(environ func() []string) Option {
	return func(o *loadOptions) { o.environ = environ }
}

// Load builds the Config for profile from these layers, later ones winning:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. VAULT_ADDR and VAULT_TOKEN
//  5. APP_ variables
//
// An APP_ variable names a config key with dots as underscores. Keys with
// underscores of their own resolve against the known keys first:
//
//	APP_SERVER_REQUEST_TIMEOUT        -> server.request_timeout
//	APP_KMS_CLIENT_RETRY_MAX_ATTEMPTS -> kms.client.retry.max_attempts
//	APP_TRANSFORM_MAX_WORKERS         -> transform.max_workers
//
// The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir, environ: os.Environ}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		EnvironFunc: o.environ,
		TransformFunc: func(key, value string) (string, any) {
			if value == "" {
				return "", nil
			}
			return vaultEnv[key], value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading vault env vars: %w", err)
	}

	known := envKeys(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:      envPrefix,
		EnvironFunc: o.environ,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if dotted, ok := known[key]; ok {
				return dotted, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// validateProfile rejects names that would read outside the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// envKeys maps the underscore form of every known key to the key itself, so
// server_read_timeout resolves to server.read_timeout and not
// server.read.timeout.
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}
