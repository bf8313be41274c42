// Package config provides emtoggle's settings.
//
// Settings are layered with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← EMTOGGLE_DELIMITER, ...
//	├─────────────────────────────┤
//	│  2. Settings File           │  ← config.toml or config.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// The merged result is decoded into a Settings value. Config holds the
// current value and replaces it wholesale on Load and Save; readers get a
// copy and never observe a half-applied change.
//
// # Sub-packages
//
//   - loader: settings file loading (TOML, YAML) and environment variables
package config
