package constant

// CertificateStatus is stored as-is on the certificate row. The string values
// are part of the wire shape and must not be renamed.
type CertificateStatus string

const (
	CertificateStatusVerified CertificateStatus = "Verified"
	CertificateStatusRevoked  CertificateStatus = "Revoked"
)

func (s CertificateStatus) Valid() bool {
	return s == CertificateStatusVerified || s == CertificateStatusRevoked
}

// VerificationState classifies a public lookup for rendering. A failed lookup
// is reported as not_found on purpose, see the verification package.
type VerificationState string

const (
	VerificationStateValid    VerificationState = "valid"
	VerificationStateRevoked  VerificationState = "revoked"
	VerificationStateNotFound VerificationState = "not_found"
)

const (
	OAUTH_PROVIDER_GOOGLE = "google"
)
