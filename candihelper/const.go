package candihelper

const (
	// TimeFormatLogger const
	TimeFormatLogger = "2006/01/02 15:04:05"

	// V1 const
	V1 = "/v1"

	// Byte ...
	Byte uint64 = 1
	// KByte ...
	KByte = Byte * 1024

	// WORKDIR const for workdir environment
	WORKDIR = "WORKDIR"

	// HeaderAuthorization const
	HeaderAuthorization = "Authorization"
	// HeaderContentType const
	HeaderContentType = "Content-Type"
	// HeaderMIMEApplicationJSON const
	HeaderMIMEApplicationJSON = "application/json"
	// HeaderDisableTrace const
	HeaderDisableTrace = "X-Disable-Trace"
)
