// Package environment resolves links against the base URL of the
// environment the site is served from.
package environment

import (
	"net/url"
	"strings"

	"github.com/akyairhashvil/pomoflip/internal/config"
	"github.com/akyairhashvil/pomoflip/internal/util"
	"go.uber.org/zap"
)

type Environment string

const (
	Localhost Environment = config.EnvLocalhost
	Staging   Environment = config.EnvStaging
	Live      Environment = config.EnvLive
)

// Detect maps a configured name to an Environment. Unknown names are live.
func Detect(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "localhost", "local", "dev", "development":
		return Localhost
	case "staging", "stage":
		return Staging
	default:
		return Live
	}
}

type Resolver struct {
	Env        Environment
	Bases      config.BaseURLs
	LegacyHost string
	logger     *zap.Logger
}

func NewResolver(cfg config.EnvironmentConfig, logger *zap.Logger) *Resolver {
	return &Resolver{
		Env:        Detect(cfg.Name),
		Bases:      cfg.BaseURLs,
		LegacyHost: cfg.LegacyProjectHost,
		logger:     util.OrNop(logger),
	}
}

// BaseURL returns the base for the current environment, falling back to live.
// A trailing slash is dropped so root-relative paths join without doubling it.
func (r *Resolver) BaseURL() string {
	var base string
	switch r.Env {
	case Localhost:
		base = r.Bases.Localhost
	case Staging:
		base = r.Bases.Staging
	}
	if base == "" {
		base = r.Bases.Live
	}
	return strings.TrimRight(base, "/")
}

// AdaptURL points raw at the current environment. Root-relative paths get the
// base prepended and absolute http(s) URLs get their scheme and host
// swapped, with an empty path written as "/". Everything else is returned
// untouched.
func (r *Resolver) AdaptURL(raw string) string {
	if raw == "" {
		return raw
	}
	base := r.BaseURL()
	if strings.HasPrefix(raw, "/") {
		return base + raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		r.logger.Warn("failed to parse URL", zap.String("url", raw), zap.Error(err))
		return raw
	}
	b, err := url.Parse(base)
	if err != nil || b.Host == "" {
		r.logger.Warn("failed to parse base URL", zap.String("base", base), zap.Error(err))
		return raw
	}
	u.Scheme = b.Scheme
	u.Host = b.Host
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// AdaptProjectURL is AdaptURL, except that during local development links to
// the legacy project host are redirected to the local base.
func (r *Resolver) AdaptProjectURL(raw string) string {
	if raw == "" {
		return raw
	}
	if r.Env == Localhost && r.LegacyHost != "" && strings.Contains(raw, r.LegacyHost) {
		return strings.Replace(raw, "https://"+r.LegacyHost, r.BaseURL(), 1)
	}
	return r.AdaptURL(raw)
}
