// Package runtime provides the execution context for gitp.
//
// It bundles the dependencies the dispatcher needs for one run: the logger,
// the settings, the branch resolver and the process executor.
package runtime
