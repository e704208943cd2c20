//go:build windows

package console

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type systemConsole struct{}

func (systemConsole) SetOutputCodePage(cp uint32) error {
	if err := windows.SetConsoleOutputCP(cp); err != nil {
		return fmt.Errorf("SetConsoleOutputCP(%d): %w", cp, err)
	}
	return nil
}

func (systemConsole) SetInputCodePage(cp uint32) error {
	if err := windows.SetConsoleCP(cp); err != nil {
		return fmt.Errorf("SetConsoleCP(%d): %w", cp, err)
	}
	return nil
}

func (systemConsole) OutputCodePage() uint32 {
	// 0 when no console is attached
	cp, _ := windows.GetConsoleOutputCP()
	return cp
}
