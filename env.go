/************************************************************************************
 *
 * corde, A Lightweight Go library for Discord API
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2025 Marlow Dev
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package corde

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads key=value pairs from the given .env-style files into
// the process environment, without overriding variables already set.
// With no paths it loads ./.env.
//
// A missing file is not an error - it's routine in production where
// secrets come from the platform's own environment instead of a file -
// but a malformed one is returned as-is.
//
// Usage:
//
//	_ = corde.LoadDotEnv() // best-effort, typical for local development
//	token, _ := corde.EnvToken("DISCORD_TOKEN")
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// ErrEnvVarNotSet is returned by EnvToken when the requested variable
// is unset or empty.
var ErrEnvVarNotSet = errors.New("corde: environment variable not set")

// EnvToken reads the bot token from the named environment variable,
// stripping a leading "Bot " prefix if present. Returns
// ErrEnvVarNotSet if the variable is unset or empty.
//
// Usage:
//
//	token, err := corde.EnvToken("DISCORD_TOKEN")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := corde.New(ctx, corde.WithToken(token))
func EnvToken(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", ErrEnvVarNotSet
	}
	if after, ok := strings.CutPrefix(value, "Bot "); ok {
		value = after
	}
	return value, nil
}

// EnvOrDefault returns the named environment variable, or defaultValue
// if it is unset or empty.
func EnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
