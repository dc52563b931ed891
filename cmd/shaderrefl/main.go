package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "net/http/pprof" // profiling

	"shaderrefl/internal/shaderrefl/cmd"
	"shaderrefl/internal/shaderrefl/log"
)

const defaultProfileAddr = "localhost:6060"

func main() {
	defer log.RecoverPanic("main", func() {
		slog.Error("shaderrefl terminated by an unhandled panic")
	})

	if addr := profileAddr(os.Getenv("SHADERREFL_PROFILE")); addr != "" {
		go func() {
			slog.Info("serving pprof", "addr", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				slog.Error("pprof listener stopped", "addr", addr, "error", err)
			}
		}()
	}

	cmd.Execute()
}

// profileAddr maps SHADERREFL_PROFILE to a listen address: empty disables
// profiling, "1" selects the default, anything else is used as given.
func profileAddr(env string) string {
	switch env {
	case "":
		return ""
	case "1":
		return defaultProfileAddr
	}
	return env
}
