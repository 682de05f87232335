// Package config loads platter's TOML configuration.
//
// # Resolution
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/platter/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Blank fields in an existing file fall back to their defaults
//
// # TOML Format
//
//	[source]
//	endpoint        = "https://www.themealdb.com/api/json/v1/1/filter.php?c=Seafood"
//	list_key        = "meals"
//	id_field        = "idMeal"
//	name_field      = "strMeal"
//	image_field     = "strMealThumb"
//	user_agent      = "platter/0.1"
//	request_timeout = "10s"   # empty: no client timeout
//	discard_stale   = false   # true: ignore superseded refresh results
//
//	[log]
//	file  = "~/.local/state/platter/platter.log"
//	level = "info"
//
// Tilde expansion is applied to the config path and log.file.
//
// # Errors
//
// Load fails on path expansion problems, read errors other than a missing
// file, invalid TOML, an unparseable or negative request_timeout and an
// unknown log level. Parse failures all carry the "parse config" prefix.
package config
