package mailer

import "embed"

const (
	FROM_NAME                    = "Certify"
	MAX_RETRY                    = 3
	CERTIFICATE_ISSUED_TEMPLATE  = "certificate_issued.tmpl"
	CERTIFICATE_REVOKED_TEMPLATE = "certificate_revoked.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toUsername, toEmail string, data any) (int, error)
}
