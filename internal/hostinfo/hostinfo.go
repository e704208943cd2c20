package hostinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

// Info identifies the host the probe runs on
type Info struct {
	OS              string
	Platform        string
	PlatformVersion string
	KernelVersion   string
}

// Collect queries the host for its OS and platform details
func Collect() (*Info, error) {
	h, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}
	return &Info{
		OS:              h.OS,
		Platform:        h.Platform,
		PlatformVersion: h.PlatformVersion,
		KernelVersion:   h.KernelVersion,
	}, nil
}

// String formats the info as "os platform version (kernel)", skipping empty parts
func (i *Info) String() string {
	s := i.OS
	if i.Platform != "" {
		s += " " + i.Platform
	}
	if i.PlatformVersion != "" {
		s += " " + i.PlatformVersion
	}
	if i.KernelVersion != "" {
		s += " (kernel " + i.KernelVersion + ")"
	}
	return s
}
