package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/models/patterns"
	"github.com/childfind-ng/childfind_backend/utils"
	"github.com/childfind-ng/childfind_backend/workflow"
)

const defaultPort = "8080"

func bindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}

func modelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrorRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, utils.ErrorStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func createMissingChildHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewMissingChild
		if err := c.ShouldBindJSON(&input); err != nil {
			bindingError(c, err)
			return
		}
		child, err := models.CreateMissingChild(c.Request.Context(), &input)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, child)
	}
}

func updateMissingChildHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewMissingChild
		if err := c.ShouldBindJSON(&input); err != nil {
			bindingError(c, err)
			return
		}
		child, err := models.UpdateMissingChild(c.Request.Context(), id, &input)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, child)
	}
}

func deleteMissingChildHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		child, err := models.DeleteMissingChild(c.Request.Context(), id)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, child)
	}
}

func getMissingChildHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		child, err := models.GetMissingChild(c.Request.Context(), id)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, child)
	}
}

func getMissingChildByCaseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		child, err := models.GetMissingChildByCaseNumber(c.Request.Context(), c.Param("caseNumber"))
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, child)
	}
}

func listMissingChildrenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		children, err := models.GetAllMissingChildren(c.Request.Context(), limit, offset)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, children)
	}
}

func searchMissingChildrenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.MissingChildFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			bindingError(c, err)
			return
		}
		children, err := models.SearchMissingChildren(c.Request.Context(), &filter)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, children)
	}
}

type updateStatusRequest struct {
	Status models.CaseStatus `json:"status" binding:"required"`
	Notes  string            `json:"notes"`
}

func updateCaseStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindingError(c, err)
			return
		}
		userId, _ := utils.GetUserIdFromContext(c.Request.Context())
		if err := models.UpdateCaseStatus(c.Request.Context(), id, req.Status, req.Notes, userId); err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
	}
}

func caseHistoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		history, err := models.GetCaseHistory(c.Request.Context(), id)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// createFoundChildHandler persists the report, then synchronously scores it
// against open cases. A scoring failure does not fail the intake: the report
// is already in, and the reviewer just sees no matches.
func createFoundChildHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()
		var input models.NewFoundChild
		if err := c.ShouldBindJSON(&input); err != nil {
			bindingError(c, err)
			return
		}
		ctx := c.Request.Context()
		found, err := models.CreateFoundChild(ctx, &input)
		if err != nil {
			modelError(c, err)
			return
		}

		matches, err := patterns.FindPotentialMatches(ctx, found.ID)
		if err != nil {
			config.LogError(logger, "server.go", "createFoundChildHandler", "FindPotentialMatches", found.ID, err)
			matches = nil
		}
		if len(matches) > 0 {
			if err := workflow.RaiseFoundMatchAlert(ctx, found.ID, matches[0], time.Now().UTC()); err != nil {
				config.LogError(logger, "server.go", "createFoundChildHandler", "RaiseFoundMatchAlert", found.ID, err)
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"found":             found,
			"potential_matches": matches,
		})
	}
}

func listFoundChildrenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := models.GetAllFoundChildren(c.Request.Context())
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, found)
	}
}

func findMatchesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		matches, err := patterns.FindPotentialMatches(c.Request.Context(), id)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, matches)
	}
}

type confirmMatchRequest struct {
	ChildId int `json:"child_id" binding:"required"`
}

func confirmMatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req confirmMatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindingError(c, err)
			return
		}
		userId, _ := utils.GetUserIdFromContext(c.Request.Context())
		found, err := models.MatchFoundChild(c.Request.Context(), id, req.ChildId, userId)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, found)
	}
}

func createSightingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewSighting
		if err := c.ShouldBindJSON(&input); err != nil {
			bindingError(c, err)
			return
		}
		sighting, err := models.CreateSighting(c.Request.Context(), &input)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sighting)
	}
}

func listSightingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if childId, err := strconv.Atoi(c.Query("child_id")); err == nil && childId > 0 {
			sightings, err := models.GetSightingsByChild(ctx, childId)
			if err != nil {
				modelError(c, err)
				return
			}
			c.JSON(http.StatusOK, sightings)
			return
		}
		if city := c.Query("city"); city != "" {
			area := c.Query("area")
			landmark := c.Query("landmark")
			sightings, err := models.SearchSightingsByLocation(ctx, city, &area, &landmark)
			if err != nil {
				modelError(c, err)
				return
			}
			c.JSON(http.StatusOK, sightings)
			return
		}
		sightings, err := models.GetAllSightings(ctx)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, sightings)
	}
}

func createWitnessReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewWitnessReport
		if err := c.ShouldBindJSON(&input); err != nil {
			bindingError(c, err)
			return
		}
		report, err := models.CreateWitnessReport(c.Request.Context(), &input)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, report)
	}
}

func listWitnessReportsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if childId, err := strconv.Atoi(c.Query("child_id")); err == nil && childId > 0 {
			reports, err := models.GetWitnessReportsByCase(ctx, childId)
			if err != nil {
				modelError(c, err)
				return
			}
			c.JSON(http.StatusOK, reports)
			return
		}
		reports, err := models.GetAllWitnessReports(ctx)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, reports)
	}
}

func getWitnessReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		report, err := models.GetWitnessReport(c.Request.Context(), id)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

func createSuspectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewSuspect
		if err := c.ShouldBindJSON(&input); err != nil {
			bindingError(c, err)
			return
		}
		suspect, err := models.CreateSuspect(c.Request.Context(), &input)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, suspect)
	}
}

func updateSuspectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewSuspect
		if err := c.ShouldBindJSON(&input); err != nil {
			bindingError(c, err)
			return
		}
		suspect, err := models.UpdateSuspect(c.Request.Context(), id, &input)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, suspect)
	}
}

func deleteSuspectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		suspect, err := models.DeleteSuspect(c.Request.Context(), id)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, suspect)
	}
}

func listSuspectsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if childId, err := strconv.Atoi(c.Query("child_id")); err == nil && childId > 0 {
			suspects, err := models.GetSuspectsByCase(ctx, childId)
			if err != nil {
				modelError(c, err)
				return
			}
			c.JSON(http.StatusOK, suspects)
			return
		}
		suspects, err := models.GetAllSuspects(ctx)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, suspects)
	}
}

func getSuspectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		suspect, err := models.GetSuspect(c.Request.Context(), id)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, suspect)
	}
}

func linkSuspectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewSuspectCaseLink
		if err := c.ShouldBindJSON(&input); err != nil {
			bindingError(c, err)
			return
		}
		link, err := models.LinkSuspectToCase(c.Request.Context(), id, &input)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, link)
	}
}

func allPatternsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		refresh := c.Query("refresh") == "1"
		summary, err := patterns.GetAllPatterns(c.Request.Context(), refresh)
		if err != nil {
			// Partial results are still useful to the patterns page; report
			// the failure alongside what was computed.
			c.JSON(http.StatusOK, gin.H{"patterns": summary, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"patterns": summary})
	}
}

func highRiskLocationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "2"))
		locations, err := patterns.DetectHighRiskLocations(c.Request.Context(), threshold)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, locations)
	}
}

func repeatSuspectsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		suspects, err := patterns.DetectRepeatSuspects(c.Request.Context())
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, suspects)
	}
}

func areaClusteringHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		clustering, err := patterns.DetectAreaClustering(c.Request.Context())
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, clustering)
	}
}

func suspiciousZonesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "2"))
		zones, err := patterns.DetectSuspiciousZones(c.Request.Context(), threshold)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, zones)
	}
}

func timePatternsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := patterns.DetectTimePatterns(c.Request.Context())
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func listAlertsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		unreadOnly := c.Query("unread") == "1"
		alerts, err := models.GetAlerts(c.Request.Context(), unreadOnly)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, alerts)
	}
}

func markAlertReadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		alert, err := models.MarkAlertRead(c.Request.Context(), id)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, alert)
	}
}

func markAllAlertsReadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.MarkAllAlertsRead(c.Request.Context()); err != nil {
			modelError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func generateAlertsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := workflow.GenerateAlerts(c.Request.Context(), time.Now().UTC())
		if err != nil {
			// Alert generation is best-effort; report what still ran.
			c.JSON(http.StatusOK, gin.H{"stats": stats, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats})
	}
}

func statisticsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		refresh := c.Query("refresh") == "1"
		stats, err := models.GetStatistics(c.Request.Context(), refresh)
		if err != nil {
			modelError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func exportPatternsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := patterns.ExportPatternsExcel(c.Request.Context())
		if err != nil {
			modelError(c, err)
			return
		}
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=patterns.xlsx")
		if err := f.Write(c.Writer); err != nil {
			config.LogError(config.GetLogger(), "server.go", "exportPatternsHandler", "Write", nil, err)
		}
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func exportStatisticsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := models.ExportStatisticsExcel(c.Request.Context())
		if err != nil {
			modelError(c, err)
			return
		}
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=statistics.xlsx")
		if err := f.Write(c.Writer); err != nil {
			config.LogError(config.GetLogger(), "server.go", "exportStatisticsHandler", "Write", nil, err)
		}
	}
}

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	// SIGTERM on revision shutdown; handle it for graceful drain.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// Start the HTTP server ASAP so the platform considers the instance
	// healthy. Until DB is ready, app endpoints return 503.
	r := gin.New()
	// Correlation IDs: generate once per request, attach to context and echo
	// back to the caller.
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(utils.SetCorrelationIdInContext(c.Request.Context(), cid))
		c.Header("x-correlation-id", cid)
		c.Next()
	})
	// Caller identity arrives as trusted headers set by the auth gateway.
	r.Use(func(c *gin.Context) {
		ctx := c.Request.Context()
		if userId, err := strconv.Atoi(c.GetHeader("x-user-id")); err == nil && userId > 0 {
			ctx = utils.SetUserIdInContext(ctx, userId)
		}
		if userName := c.GetHeader("x-user-name"); userName != "" {
			ctx = utils.SetUserNameInContext(ctx, userName)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	// Server-side failures get one structured log line with request identity.
	r.Use(func(c *gin.Context) {
		c.Next()
		if c.Writer.Status() < http.StatusInternalServerError {
			return
		}
		ctx := c.Request.Context()
		cid, _ := utils.GetCorrelationIdFromContext(ctx)
		userName, _ := utils.GetUserNameFromContext(ctx)
		logger.WithFields(logrus.Fields{
			"method":        c.Request.Method,
			"path":          c.FullPath(),
			"status":        c.Writer.Status(),
			"correlationId": cid,
			"userName":      userName,
		}).Error("request failed")
	})
	r.Use(func(c *gin.Context) {
		// Always allow the probes.
		if c.Request.URL.Path == "/healthz" || c.Request.URL.Path == "/readyz" {
			c.Next()
			return
		}
		// Gate app endpoints on dependency readiness. Redis is optional.
		if config.GetDB() == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/readyz", func(c *gin.Context) {
		dbReady := config.GetDB() != nil
		status := http.StatusOK
		if !dbReady {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"db":    dbReady,
			"redis": config.GetRedisDB() != nil,
		})
	})

	corsConfig := cors.DefaultConfig()
	// In production, require an explicit allowlist via CORS_ALLOWED_ORIGINS
	// (comma-separated); in non-production, allow all.
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.POST("/children", createMissingChildHandler())
		api.GET("/children", listMissingChildrenHandler())
		api.GET("/children/search", searchMissingChildrenHandler())
		api.GET("/children/by-case/:caseNumber", getMissingChildByCaseHandler())
		api.GET("/children/:id", getMissingChildHandler())
		api.PUT("/children/:id", updateMissingChildHandler())
		api.DELETE("/children/:id", deleteMissingChildHandler())
		api.POST("/children/:id/status", updateCaseStatusHandler())
		api.GET("/children/:id/history", caseHistoryHandler())

		api.POST("/found", createFoundChildHandler())
		api.GET("/found", listFoundChildrenHandler())
		api.GET("/found/:id/matches", findMatchesHandler())
		api.POST("/found/:id/match", confirmMatchHandler())

		api.POST("/sightings", createSightingHandler())
		api.GET("/sightings", listSightingsHandler())

		api.POST("/witnesses", createWitnessReportHandler())
		api.GET("/witnesses", listWitnessReportsHandler())
		api.GET("/witnesses/:id", getWitnessReportHandler())

		api.POST("/suspects", createSuspectHandler())
		api.GET("/suspects", listSuspectsHandler())
		api.GET("/suspects/:id", getSuspectHandler())
		api.PUT("/suspects/:id", updateSuspectHandler())
		api.DELETE("/suspects/:id", deleteSuspectHandler())
		api.POST("/suspects/:id/link", linkSuspectHandler())

		api.GET("/patterns", allPatternsHandler())
		api.GET("/patterns/locations", highRiskLocationsHandler())
		api.GET("/patterns/suspects", repeatSuspectsHandler())
		api.GET("/patterns/areas", areaClusteringHandler())
		api.GET("/patterns/zones", suspiciousZonesHandler())
		api.GET("/patterns/time", timePatternsHandler())
		api.GET("/patterns/export", exportPatternsHandler())

		api.GET("/alerts", listAlertsHandler())
		api.POST("/alerts/generate", generateAlertsHandler())
		api.POST("/alerts/:id/read", markAlertReadHandler())
		api.POST("/alerts/read-all", markAllAlertsReadHandler())

		api.GET("/statistics", statisticsHandler())
		api.GET("/statistics/export", exportStatisticsHandler())
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	// Connect dependencies after the port is open.
	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()

	db := config.GetDB()
	sqlDB, _ := db.DB()
	defer func() {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}()
	// AutoMigrate can run DDL that blocks tables; allow disabling on startup
	// and running migrations as a separate job instead.
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("SKIP_MIGRATIONS")), "true") {
		models.MigrateTable()
	} else {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Warn("SKIP_MIGRATIONS=true; skipping AutoMigrate on startup")
	}

	logger.WithFields(logrus.Fields{
		"info": "Connection Established",
	}).Info("listening on http://localhost:", port)

	// Block until shutdown or server error.
	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}
}
