// Package autoload initializes the global logger from the LOG_* environment
// variables. Blank-import it from main.
package autoload

import (
	configx "github.com/medai-labs/medai/pkg/config"
	logx "github.com/medai-labs/medai/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
