// Package config loads environment variables into typed structs.
// Each configuration type is parsed once and cached for the process lifetime.
//
// A .env file in the working directory is read on first use; variables already
// present in the environment take precedence. Parsing uses caarlos0/env tags:
//
//	type BindConfig struct {
//		MaxBodySize     int64 `env:"BIND_MAX_BODY_SIZE" envDefault:"1048576"`
//		CaseInsensitive bool  `env:"BIND_CASE_INSENSITIVE" envDefault:"false"`
//	}
//
//	var cfg BindConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning the error, which suits startup code.
// Different types are cached independently; a failed load is not cached.
package config
