package model

// OpKind identifies a kind of background operation
type OpKind string

const (
	// OpFetch is a metadata fetch for a URL
	OpFetch OpKind = "fetch"

	// OpDownload is a media download
	OpDownload OpKind = "download"

	// OpThumbnail is a thumbnail load following a fetch
	OpThumbnail OpKind = "thumbnail"
)

// OpStatus represents the status of a background operation
type OpStatus string

const (
	// OpStatusIdle means nothing has been started yet
	OpStatusIdle OpStatus = "Idle"

	// OpStatusRunning means the operation is in flight
	OpStatusRunning OpStatus = "Running"

	// OpStatusSucceeded means the operation finished successfully
	OpStatusSucceeded OpStatus = "Succeeded"

	// OpStatusFailed means the operation failed with an error
	OpStatusFailed OpStatus = "Failed"

	// OpStatusCanceled means the operation was aborted before completion
	OpStatusCanceled OpStatus = "Canceled"
)

// String returns the string representation of OpStatus
func (s OpStatus) String() string {
	return string(s)
}

// IsActive returns true if the operation is still in flight
func (s OpStatus) IsActive() bool {
	return s == OpStatusRunning
}

// IsFinished returns true if the operation reached a terminal state
func (s OpStatus) IsFinished() bool {
	return s == OpStatusSucceeded || s == OpStatusFailed || s == OpStatusCanceled
}

// ProgressStatus is the phase reported by a progress event
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
)
