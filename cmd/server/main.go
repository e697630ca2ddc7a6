package main

import (
	"fmt"
	"log"
	"net/http"

	bench "github.com/jwaldner/approxbench/bench_lib"
	"github.com/jwaldner/approxbench/internal/config"
	"github.com/jwaldner/approxbench/internal/handlers"
	"github.com/jwaldner/approxbench/internal/logger"
)

func main() {
	cfg := config.Load()

	// Initialize proper logging with config level and file path
	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Close()
	logger.Always.Printf("🚀 approxbench kernel server starting - Port: %s", cfg.Port)

	if cfg.Logging.LogLevel == "verbose" {
		fmt.Printf("⚠️  VERBOSE LOGGING ENABLED - per-call timings will be logged to %s\n", cfg.Logging.LogFile)
	}

	if _, err := bench.ParseExecutionMode(cfg.Engine.ExecutionMode); err != nil {
		log.Fatalf("Invalid engine config: %v", err)
	}
	engine := bench.NewEngineFromConfig(cfg.Engine)
	perf := bench.NewPerformanceWrapper(engine)
	defer perf.Close()

	logger.Always.Printf("🔧 EXECUTION MODE: %s (%d workers)", engine.ExecutionMode(), engine.Workers())

	r := handlers.NewRouter(handlers.NewKernelHandler(perf, cfg))

	fmt.Printf("🌐 Server starting on http://localhost:%s\n", cfg.Port)
	logger.Info.Printf("🌐 HTTP server started on port %s", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		logger.Error.Printf("Server failed: %v", err)
		log.Fatal("Server failed to start:", err)
	}
}
