// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer  = "stream-panel-test"
	testSignKey = "test-sign-key"
)

func TestGenerateGateToken_Success(t *testing.T) {
	token, err := GenerateGateToken(testIssuer, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty signed string")
	}
	if parts := strings.Split(token.SignedString, "."); len(parts) != 3 {
		t.Errorf("expected compact JWS with 3 segments, got %d", len(parts))
	}
	if token.Subject != models.GateSubject {
		t.Errorf("expected subject %q, got %q", models.GateSubject, token.Subject)
	}
}

func TestGenerateGateToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateGateToken(tt.issuer, tt.duration, tt.signKey); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateGateToken_RoundTrip(t *testing.T) {
	issued, err := GenerateGateToken(testIssuer, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	validated, err := ValidateGateToken(issued.SignedString, testSignKey, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if validated.Subject != models.GateSubject {
		t.Errorf("expected subject %q, got %q", models.GateSubject, validated.Subject)
	}
	if validated.SignedString != issued.SignedString {
		t.Error("expected signed string to survive validation")
	}
}

func TestValidateGateToken_WrongKey(t *testing.T) {
	issued, err := GenerateGateToken(testIssuer, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err = ValidateGateToken(issued.SignedString, "another-key", testIssuer); err == nil {
		t.Fatal("expected signature verification failure")
	}
}

func TestValidateGateToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateGateToken(testIssuer, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err = ValidateGateToken(issued.SignedString, testSignKey, "someone-else"); err == nil {
		t.Fatal("expected issuer mismatch failure")
	}
}

func TestValidateGateToken_Expired(t *testing.T) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   models.GateSubject,
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err = ValidateGateToken(signed, testSignKey, testIssuer); err == nil {
		t.Fatal("expected expiry failure")
	}
}

func TestValidateGateToken_ForeignSubject(t *testing.T) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "some-user",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err = ValidateGateToken(signed, testSignKey, testIssuer); err == nil {
		t.Fatal("expected subject rejection")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer ", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
