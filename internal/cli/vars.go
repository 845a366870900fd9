// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// audit
	inputFile string
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// analyze
	interactive bool
	// analyze, audit, serve
	blocklistFile string
	// generate
	genLength  int
	genNoLower bool
	genNoUpper bool
	genNoDigit bool
	genNoSpec  bool
	// audit
	threads int
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
)
