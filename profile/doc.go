// Package profile persists user defaults as a TOML file under
// ~/.namankura/. The profile seeds the baseline filter set and selects the
// AI endpoints; command-line flags override it.
package profile
