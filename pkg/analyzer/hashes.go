// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Demonstration cost parameters. Deliberately low so a request stays fast;
// these are NOT production storage parameters.
const bcryptDemoCost = 10

var argon2DemoParams = argon2id.Params{
	Memory:      16 * 1024, // 16 MiB
	Iterations:  1,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// Hashes computes a representative digest per storage scheme, for
// educational comparison only. The plaintext entry is the password itself;
// the surrounding UI labels it as unsafe. A failing backend drops its
// entry instead of failing the whole call.
func Hashes(password string) map[string]string {
	md5Sum := md5.Sum([]byte(password))
	shaSum := sha256.Sum256([]byte(password))
	hashes := map[string]string{
		"plaintext": password,
		"md5":       hex.EncodeToString(md5Sum[:]),
		"sha256":    hex.EncodeToString(shaSum[:]),
	}

	// bcrypt rejects inputs over 72 bytes.
	if bc, err := bcrypt.GenerateFromPassword([]byte(password), bcryptDemoCost); err == nil {
		hashes["bcrypt"] = string(bc)
	} else {
		log.Debug().Err(err).Msg("bcrypt demonstration hash skipped")
	}

	if phc, err := argon2id.CreateHash(password, &argon2DemoParams); err == nil {
		hashes["argon2"] = phc
	} else {
		log.Debug().Err(err).Msg("argon2 demonstration hash skipped")
	}

	return hashes
}

// Argon2Available reports whether the argon2id backend is usable. The
// implementation is pure Go and compiled in, so this only fails if the
// random source is broken.
func Argon2Available() bool {
	_, err := argon2id.CreateHash("probe", &argon2DemoParams)
	return err == nil
}
