// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/auth"
	"github.com/harishsolar/solarsite/internal/backup"
	"github.com/harishsolar/solarsite/internal/components"
	"github.com/harishsolar/solarsite/internal/config"
	"github.com/harishsolar/solarsite/internal/db"
	"github.com/harishsolar/solarsite/internal/email"
	"github.com/harishsolar/solarsite/internal/handlers"
	"github.com/harishsolar/solarsite/internal/inquiries"
	"github.com/harishsolar/solarsite/internal/logging"
	"github.com/harishsolar/solarsite/internal/media"
	"github.com/harishsolar/solarsite/internal/middleware"
	"github.com/harishsolar/solarsite/internal/themes"
	"github.com/harishsolar/solarsite/internal/tls"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the solarsite HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		logger, err := logging.New(config.GetBool("server.development"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logging.Set(logger)
		defer logger.Sync()

		if err := runServer(cmd.Context(), logger); err != nil {
			logger.Error("server stopped", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// newHandlers assembles the site from config
func newHandlers(logger *zap.Logger) (*handlers.Handlers, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	images := media.NewResolver(config.GetString("storage.static_dir"))
	site := &components.Site{
		Name:    config.GetString("site.name"),
		Theme:   themes.Resolve(config.GetString("site.theme"), config.GetString("site.palette")),
		Catalog: cat,
		Images:  images,
	}

	h := handlers.New(site, images, inquiries.NewStore(db.GetDB()), logger)
	h.SecureCookies = config.GetBool("server.tls_enabled")

	if config.GetString("admin.password_hash") != "" {
		a, err := auth.NewAuthenticator(
			config.GetString("admin.username"),
			config.GetString("admin.password_hash"),
			config.GetString("auth.jwt_secret"),
			config.GetDuration("auth.session_ttl"),
		)
		if err != nil {
			return nil, fmt.Errorf("admin inbox: %w", err)
		}
		h.Auth = a
	} else {
		logger.Info("admin inbox disabled; set a password with: solarsite admin set-password")
	}

	svc, err := email.NewEmailService()
	if err != nil {
		logger.Info("inquiry notifications disabled", zap.Error(err))
		return h, nil
	}
	h.Mailer = svc
	h.NotifyTo = config.GetString("contact.notify_email")
	if h.NotifyTo == "" {
		h.NotifyTo = svc.From()
	}
	return h, nil
}

// newLimiter returns a per-IP limiter sized by the limit and window config keys
func newLimiter(limitKey, windowKey string, fallback time.Duration) *middleware.RateLimiter {
	window := config.GetDuration(windowKey)
	if window <= 0 {
		window = fallback
	}
	return middleware.NewRateLimiter(config.GetInt(limitKey), window)
}

// newRouter builds the middleware chain and mounts h. contact throttles
// contact form posts and login throttles admin sign-in attempts, each with
// its own budget.
func newRouter(h *handlers.Handlers, contact, login *middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	tlsEnabled := config.GetBool("server.tls_enabled")

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	if tlsEnabled {
		r.Use(middleware.HTTPSRedirectMiddleware(config.GetString("server.https_port")))
	}
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("security.blocked_ips")))
	r.Use(middleware.RateLimitMiddleware(contact, "/contact"))
	r.Use(middleware.RateLimitMiddleware(login, auth.LoginPath))
	r.Use(middleware.CSRFMiddleware(tlsEnabled))
	r.Use(middleware.ThemeMiddleware(config.GetString("site.theme"), config.GetString("site.palette")))

	h.Register(r)
	return r
}

func runServer(parent context.Context, logger *zap.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !config.GetBool("server.development") {
		gin.SetMode(gin.ReleaseMode)
	}

	h, err := newHandlers(logger)
	if err != nil {
		return err
	}

	contactLimiter := newLimiter("contact.rate_limit", "contact.rate_window", time.Hour)
	defer contactLimiter.Stop()
	loginLimiter := newLimiter("admin.login_rate_limit", "admin.login_rate_window", 15*time.Minute)
	defer loginLimiter.Stop()

	r := newRouter(h, contactLimiter, loginLimiter, logger)

	// Backups
	if config.GetBool("backups.enable_auto_backup") {
		manager := backup.NewBackupManager(config.GetString("backups.path"), config.GetInt("backups.retention"))
		scheduler := backup.NewScheduler(manager, db.GetDB())
		if interval := config.GetDuration("backups.interval"); interval > 0 {
			scheduler.SetInterval(interval)
		}
		if uploader, err := newUploader(); err != nil {
			logger.Warn("off-site backups disabled", zap.Error(err))
		} else if uploader != nil {
			scheduler.Uploader = uploader
		}
		if h.Mailer != nil {
			scheduler.OnError = func(err error) {
				if err := email.SendErrorNotification(h.Mailer, h.NotifyTo, h.Site.Name, "Backup failed", err.Error()); err != nil {
					logger.Error("failed to send backup error notification", zap.Error(err))
				}
			}
		}

		done := scheduler.Start()
		logger.Info("backup scheduler started", zap.Duration("interval", scheduler.BackupInterval))
		defer func() {
			scheduler.Stop()
			<-done
		}()
	}

	baseDomain := config.GetString("server.base_domain")
	httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))

	var servers []*http.Server
	errc := make(chan error, 2)

	serve := func(srv *http.Server, ln net.Listener, useTLS bool) {
		var err error
		if useTLS {
			err = srv.ServeTLS(ln, "", "")
		} else {
			err = srv.Serve(ln)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}

	if config.GetBool("server.tls_enabled") {
		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load TLS config: %w", err)
		}

		tlsManager, err := tls.NewManager(tlsCfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize TLS manager: %w", err)
		}
		if err := tlsManager.Manage(ctx); err != nil {
			return err
		}

		// HTTP server answers ACME challenges and redirects everything else
		// Create listener first to catch binding errors immediately
		httpLn, err := net.Listen("tcp", httpAddr)
		if err != nil {
			return fmt.Errorf("failed to bind HTTP server to %s (port 80 typically requires root): %w", httpAddr, err)
		}
		httpSrv := &http.Server{Handler: tlsManager.HTTPChallengeHandler(r)}
		servers = append(servers, httpSrv)
		go serve(httpSrv, httpLn, false)
		logger.Info("HTTP server listening", zap.String("addr", httpAddr), zap.String("purpose", "ACME challenges + redirects"))

		httpsAddr := fmt.Sprintf(":%s", config.GetString("server.https_port"))
		httpsLn, err := net.Listen("tcp", httpsAddr)
		if err != nil {
			httpSrv.Close()
			return fmt.Errorf("failed to bind HTTPS server to %s: %w", httpsAddr, err)
		}
		httpsSrv := &http.Server{Handler: r, TLSConfig: tlsManager.GetTLSConfig()}
		servers = append(servers, httpsSrv)
		go serve(httpsSrv, httpsLn, true)
		logger.Info("HTTPS server listening", zap.String("addr", httpsAddr), zap.Strings("domains", tlsManager.Domains()))
	} else {
		// Dev mode - HTTP only
		ln, err := net.Listen("tcp", httpAddr)
		if err != nil {
			return fmt.Errorf("failed to bind HTTP server to %s: %w", httpAddr, err)
		}
		srv := &http.Server{Handler: r}
		servers = append(servers, srv)
		go serve(srv, ln, false)
		logger.Info("HTTP server listening (TLS disabled)", zap.String("addr", httpAddr), zap.String("base_domain", baseDomain))
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case serveErr = <-errc:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}

	return serveErr
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
