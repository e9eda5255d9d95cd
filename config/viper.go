package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Viper keys bound by the CLI. Environment variables use the JREGISTER_
// prefix, e.g. JREGISTER_CACHE_PATH.
const (
	KeyNormalize = "normalize"
	KeyTraceDir  = "trace_dir"
	KeyCachePath = "cache_path"
	KeyAddr      = "server.addr"
	KeyOrigins   = "server.allowed_origins"
)

var envReplacer = strings.NewReplacer(".", "_")

// NewViper returns a viper instance reading JREGISTER_* variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("JREGISTER")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	return v
}

// Override applies every key set in v (flag or environment) on top of cfg.
func (c *Config) Override(v *viper.Viper) {
	if v.IsSet(KeyNormalize) {
		on := v.GetBool(KeyNormalize)
		c.Normalize = &on
	}
	if s := v.GetString(KeyTraceDir); s != "" {
		c.TraceDir = s
	}
	if s := v.GetString(KeyCachePath); s != "" {
		c.CachePath = s
	}
	if v.IsSet(KeyAddr) {
		if s := v.GetString(KeyAddr); s != "" {
			c.Server.Addr = s
		}
	}
	if o := v.GetStringSlice(KeyOrigins); len(o) > 0 {
		c.Server.AllowedOrigins = o
	}
}
