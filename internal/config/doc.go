// Package config loads the server configuration from YAML with
// ${VAR:-default} environment expansion. Every field is optional; an
// empty config path yields a fully defaulted configuration.
package config
