package domain

// Upload describes a file that the transport layer has already received onto
// temporary storage. The asset store consumes it; it never touches the
// request body itself.
type Upload struct {
	TempPath     string
	OriginalName string
	MIMEType     string
	SizeBytes    int64
}
