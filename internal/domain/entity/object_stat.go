package entity

import "time"

type StatStatus int

const (
	StatFound StatStatus = iota
	StatNotFound
	StatLookupError
)

func (s StatStatus) String() string {
	switch s {
	case StatFound:
		return "found"
	case StatNotFound:
		return "not_found"
	case StatLookupError:
		return "lookup_error"
	default:
		return "unknown"
	}
}

type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

// ObjectStat is the result of a blob lookup. Info is set only for StatFound
// and Err only for StatLookupError.
type ObjectStat struct {
	Status StatStatus
	Info   ObjectInfo
	Err    error
}

func Found(info ObjectInfo) ObjectStat {
	return ObjectStat{Status: StatFound, Info: info}
}

func NotFound() ObjectStat {
	return ObjectStat{Status: StatNotFound}
}

func LookupError(err error) ObjectStat {
	return ObjectStat{Status: StatLookupError, Err: err}
}
