package service

// Op names a library store operation in events and errors.
type Op string

const (
	OpReload    Op = "reload"
	OpUpdate    Op = "update"
	OpRemove    Op = "remove"
	OpDeploy    Op = "deploy"
	OpDeployOff Op = "deploy_off"
	OpClear     Op = "clear"
	OpExport    Op = "export"
	OpImport    Op = "import"
)

// EventKind is the state a store operation reached.
type EventKind int

const (
	// EventPending is emitted when an operation starts.
	EventPending EventKind = iota
	// EventSucceeded is emitted after the write and, for mutations, the refetch.
	EventSucceeded
	// EventFailed is emitted when the operation itself failed; the cache is untouched.
	EventFailed
	// EventResyncFailed is emitted when the write succeeded but the refetch did not.
	EventResyncFailed
)

func (k EventKind) String() string {
	switch k {
	case EventPending:
		return "pending"
	case EventSucceeded:
		return "succeeded"
	case EventFailed:
		return "failed"
	case EventResyncFailed:
		return "resync_failed"
	default:
		return "unknown"
	}
}

// Event is delivered to store subscribers on every state transition.
type Event struct {
	Op      Op
	Kind    EventKind
	Err     error
	Version uint64
}
