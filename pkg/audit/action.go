package audit

//go:generate go run github.com/dmarkham/enumer -type Action -trimprefix Action -transform lower -output action.gen.go

// Action identifies the operation an audit event describes.
type Action int

const (
	ActionRegister Action = iota
	ActionLogin
	ActionRefresh
	ActionAdd
	ActionBatch
	ActionSubtract
)
