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
	"encoding/json"
	"testing"
	"time"
)

func TestSnowflake_RoundTripJSON(t *testing.T) {
	s := MustParseSnowflake("175928847299117063")

	buf, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(buf) != `"175928847299117063"` {
		t.Errorf("Marshal() = %s, want quoted decimal", buf)
	}

	var decoded Snowflake
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded != s {
		t.Errorf("round trip = %v, want %v", decoded, s)
	}
}

func TestSnowflake_UnmarshalNull(t *testing.T) {
	var s Snowflake = 1
	if err := json.Unmarshal([]byte("null"), &s); err != nil {
		t.Fatalf("Unmarshal(null) error: %v", err)
	}
	if s != 0 {
		t.Errorf("s = %v, want 0", s)
	}
}

func TestParseSnowflake_Rejects(t *testing.T) {
	cases := []string{"", "-1", "12a3", " 123", "0x1F", "123456789012345678901"}
	for _, c := range cases {
		if _, err := ParseSnowflake(c); err == nil {
			t.Errorf("ParseSnowflake(%q) = nil error, want error", c)
		}
	}
}

func TestSnowflake_Timestamp(t *testing.T) {
	// 175928847299117063 is Discord's own documented example snowflake.
	s := MustParseSnowflake("175928847299117063")
	want := time.Date(2016, time.April, 30, 11, 18, 25, 0, time.UTC)

	got := s.Timestamp().UTC()
	if got.Year() != want.Year() || got.Month() != want.Month() || got.Day() != want.Day() {
		t.Errorf("Timestamp() = %v, want date around %v", got, want)
	}
}

func TestSnowflake_IsZero(t *testing.T) {
	var z Snowflake
	if !z.IsZero() {
		t.Error("zero Snowflake.IsZero() = false, want true")
	}
	if (Snowflake(1)).IsZero() {
		t.Error("nonzero Snowflake.IsZero() = true, want false")
	}
}
