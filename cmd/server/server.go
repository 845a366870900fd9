package main

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/likexian/selfca"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"passlab/internal/api"
	"passlab/pkg/analyzer"
	"passlab/pkg/wordlist"
)

// Standalone server entrypoint configured entirely from the environment,
// for container deployments where the cobra CLI is not wanted.
func main() {
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var extra []string
	if cfg.WordlistFile != "" {
		words, err := wordlist.LoadFile(cfg.WordlistFile)
		if err != nil {
			log.Fatal().Err(err).Msg("error loading wordlist file")
		}
		extra = append(extra, words...)
	}
	if cfg.WordlistURL != "" {
		words, err := wordlist.Fetch(cfg.WordlistURL)
		if err != nil {
			log.Fatal().Err(err).Msg("error fetching wordlist")
		}
		extra = append(extra, words...)
	}
	engine := analyzer.New(analyzer.WithExtraWords(extra))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.SetLogger(logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
		return zerolog.New(gin.DefaultWriter)
	})))

	v1 := router.Group("/v1")
	api.RegisterAnalyzerApi(v1, engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		if cfg.TLSCert != "" && cfg.TLSKey != "" {
			if err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey); err != nil && err != http.ErrServerClosed {
				log.Fatal().Msgf("listen: %s\n", err)
			}
		} else if cfg.SelfTLS {
			log.Warn().Msgf("using auto self-signed certificate for TLS. This is not recommended for production. Please consider using your own certificates.")
			caConfig := selfca.Certificate{
				IsCA:      true,
				KeySize:   2048,
				NotBefore: time.Now(),
				// 30 day self-signed cert.
				NotAfter: time.Now().Add(time.Duration(30*24) * time.Hour),
			}

			certificate, key, err := selfca.GenerateCertificate(caConfig)
			if err != nil {
				log.Fatal().Err(err).Msg("error generating auto self-signed certificate")
			}

			pair, err := tls.X509KeyPair(
				pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate}),
				pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
			)
			if err != nil {
				log.Fatal().Err(err).Msg("error using auto self-signed certificate")
			}

			srv.TLSConfig = &tls.Config{
				Certificates: []tls.Certificate{pair},
			}

			if err = srv.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
				log.Fatal().Msgf("listen: %s\n", err)
			}
		} else {
			// service connections
			if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatal().Msgf("listen: %s\n", err)
			}
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall. SIGKILL but can't be a catch, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Server Shutdown.")
	}
	select {
	case <-ctx.Done():
		// Nothing for now
	}
	log.Info().Msg("Server exiting...")
}
