package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/workflow"
)

// One-shot job for Cloud Scheduler: run the nightly pattern sweep and raise
// any alerts that cleared their thresholds today.
func main() {
	logger := config.GetLogger()

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	stats, err := workflow.GenerateAlerts(ctx, time.Now().UTC())
	if err != nil {
		config.LogError(logger, "main.go", "main", "GenerateAlerts", stats, err)
	}
	if stats != nil {
		logger.WithFields(logrus.Fields{
			"raised":     stats.Raised,
			"suppressed": stats.Suppressed,
			"failed":     stats.Failed,
		}).Info("alert sweep finished")
	}

	if err != nil || (stats != nil && stats.Failed > 0) {
		os.Exit(1)
	}
}
