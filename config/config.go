// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tinysol/tinysol/compiler"
	"github.com/tinysol/tinysol/log"
)

// Config is the configuration an embedding application hands the compiler
// and the logging facade. The host decides where viper reads it from
// (file, env, flags); this core only unmarshals it.
type Config struct {
	Log      log.Config      `mapstructure:"log"`
	Compiler compiler.Config `mapstructure:"compiler"`
}

var format = `log: %v
compiler: %v`

func (c Config) String() string {
	return fmt.Sprintf(format, c.Log, c.Compiler)
}

// Load unmarshals a config from viper and fills in defaults.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Prepare()
	return &cfg, nil
}

// Prepare makes sure all configurations are correct.
func (c *Config) Prepare() {
	if c.Compiler.SelectorCacheSize <= 0 {
		c.Compiler.SelectorCacheSize = compiler.DefaultSelectorCacheSize
	}
}
