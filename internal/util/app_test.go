package util

import (
	"testing"
)

func TestVerificationURL(t *testing.T) {
	tests := []struct {
		name          string
		frontURL      string
		certificateId string
		want          string
	}{
		{"Plain id", "https://certs.example.com", "CERT-001", "https://certs.example.com/verify.html?id=CERT-001"},
		{"Trailing slash trimmed", "https://certs.example.com/", "CERT-001", "https://certs.example.com/verify.html?id=CERT-001"},
		{"Id gets query escaped", "https://certs.example.com", "CERT 001&x=1", "https://certs.example.com/verify.html?id=CERT+001%26x%3D1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerificationURL(tt.frontURL, tt.certificateId)
			if got != tt.want {
				t.Errorf("VerificationURL() = %v, want %v", got, tt.want)
			}
		})
	}
}
