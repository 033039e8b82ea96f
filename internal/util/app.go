package util

import (
	"fmt"
	"net/url"
	"strings"
)

func GetAppName() string {
	return "Certify"
}

// VerificationURL builds the public verification page link for a certificate.
// The page reads the id query parameter and verifies on load.
func VerificationURL(frontURL, certificateId string) string {
	return fmt.Sprintf("%s/verify.html?id=%s",
		strings.TrimRight(frontURL, "/"), url.QueryEscape(certificateId))
}

func BadgeDirectoryPath(certificateId string) string {
	return fmt.Sprintf("badges/%s", certificateId)
}
