// Package config holds gitp's settings.
//
// gitp reads no configuration files. Settings are build-time defaults
// (git binary, remote, push verb pair), plus a few environment variables
// that only control diagnostics logging:
//   - GITP_DEBUG enables debug messages on the console
//   - GITP_LOG_FILE enables a rotating log file at that path
//   - GITP_LOG_MAX_SIZE, GITP_LOG_MAX_BACKUPS, GITP_LOG_MAX_AGE tune rotation
package config
