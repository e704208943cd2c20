//go:build !windows

package console

type systemConsole struct{}

func (systemConsole) SetOutputCodePage(cp uint32) error { return nil }

func (systemConsole) SetInputCodePage(cp uint32) error { return nil }

func (systemConsole) OutputCodePage() uint32 { return CodePageUTF8 }
