package application

type ExportFormat string

const (
	ExportFormatText   ExportFormat = "text"
	ExportFormatJSON   ExportFormat = "json"
	ExportFormatOAuth2 ExportFormat = "oauth2"
)

func (f ExportFormat) Valid() bool {
	switch f {
	case ExportFormatText, ExportFormatJSON, ExportFormatOAuth2:
		return true
	default:
		return false
	}
}

type LogoutOptions struct {
	// ClearPending also discards an in-flight flow-state record.
	ClearPending bool
}
