package domain

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

// Claimable reports whether a file with this status may be picked up by the
// watch pipeline. The zero value means the file has never been seen.
func (s Status) Claimable() bool {
	return s == "" || s == StatusPending
}
