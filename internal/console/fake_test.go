package console

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFake(t *testing.T) {
	tests := []struct {
		name       string
		reject     bool
		wantOutput uint32
		wantInput  uint32
	}{
		{name: "accepts request", reject: false, wantOutput: CodePageUTF8, wantInput: CodePageUTF8},
		{name: "rejects request", reject: true, wantOutput: 437, wantInput: 437},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFake(437)
			f.Reject = tt.reject

			errOut := f.SetOutputCodePage(CodePageUTF8)
			errIn := f.SetInputCodePage(CodePageUTF8)
			if tt.reject {
				require.Error(t, errOut)
				require.Error(t, errIn)
			} else {
				require.NoError(t, errOut)
				require.NoError(t, errIn)
			}

			require.Equal(t, tt.wantOutput, f.OutputCodePage())
			require.Equal(t, tt.wantInput, f.Input)
			require.Equal(t, []string{
				"SetOutputCodePage(65001)",
				"SetInputCodePage(65001)",
				"OutputCodePage()",
			}, f.Calls)
		})
	}
}
