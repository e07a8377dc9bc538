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
	"path/filepath"
	"testing"
)

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	err := LoadDotEnv(filepath.Join(dir, "does-not-exist.env"))
	if err != nil {
		t.Fatalf("LoadDotEnv() error = %v, want nil for a missing file", err)
	}
}

func TestLoadDotEnv_LoadsValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("CORDE_TEST_SHARD_COUNT=4\n"), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	// godotenv.Load never overrides a variable that's already present
	// in the environment (even set to ""), so this must be fully
	// unset rather than Setenv'd empty.
	os.Unsetenv("CORDE_TEST_SHARD_COUNT")
	t.Cleanup(func() { os.Unsetenv("CORDE_TEST_SHARD_COUNT") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}

	if got := EnvOrDefault("CORDE_TEST_SHARD_COUNT", "0"); got != "4" {
		t.Errorf("CORDE_TEST_SHARD_COUNT = %q, want %q", got, "4")
	}
}

func TestEnvToken_StripsBotPrefix(t *testing.T) {
	t.Setenv("TEST_TOKEN", "Bot abc123")

	token, err := EnvToken("TEST_TOKEN")
	if err != nil {
		t.Fatalf("EnvToken() error: %v", err)
	}
	if token != "abc123" {
		t.Errorf("token = %q, want %q", token, "abc123")
	}
}

func TestEnvToken_NotSet(t *testing.T) {
	t.Setenv("TEST_TOKEN_UNSET", "")

	_, err := EnvToken("TEST_TOKEN_UNSET")
	if !errors.Is(err, ErrEnvVarNotSet) {
		t.Errorf("err = %v, want ErrEnvVarNotSet", err)
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_OR_DEFAULT", "")
	if got := EnvOrDefault("TEST_OR_DEFAULT", "fallback"); got != "fallback" {
		t.Errorf("got = %q, want %q", got, "fallback")
	}

	t.Setenv("TEST_OR_DEFAULT", "set")
	if got := EnvOrDefault("TEST_OR_DEFAULT", "fallback"); got != "set" {
		t.Errorf("got = %q, want %q", got, "set")
	}
}

