// @title deskhub API
// @version 1.0
// @description REST backend for the deskhub office listing and reservation platform.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"deskhub/config"
	"deskhub/di"
	"deskhub/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
