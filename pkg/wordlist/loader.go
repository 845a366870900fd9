// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package wordlist loads supplemental common-password lists from local
// files or remote URLs. Lists are read once at startup; the analyzer
// freezes them afterwards.
package wordlist

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

// maxEntries bounds a loaded list so a runaway source cannot exhaust
// memory. Common-password lists are a few hundred to a few thousand lines.
const maxEntries = 1_000_000

// LoadFile reads one password per line. Blank lines and '#' comments are
// skipped.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wordlist: %w", err)
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing wordlist file")
		}
	}(file)

	return parseLines(file)
}

// Fetch downloads a plain-text wordlist over HTTPS with retries.
func Fetch(url string) ([]string, error) {
	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "passlab-wordlist-fetcher/1.0")

	res, err := newClient().Do(req)
	if err != nil {
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err = body.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing wordlist response body")
		}
	}(res.Body)

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("wordlist request failed with status [%d] %s", res.StatusCode, res.Status)
	}

	return parseLines(res.Body)
}

func newClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 5

	client.HTTPClient = &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	return client
}

func parseLines(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
		if len(words) >= maxEntries {
			log.Warn().Msgf("wordlist truncated at %d entries", maxEntries)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}

	log.Debug().Msgf("loaded %d wordlist entries", len(words))
	return words, nil
}
