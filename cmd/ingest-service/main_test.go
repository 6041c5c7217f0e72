package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockApp struct {
	runErr   error
	usageErr bool
}

func (a mockApp) Run() error       { return a.runErr }
func (a mockApp) UsageError() bool { return a.usageErr }
func (a mockApp) Hup() bool        { return false }
func (a mockApp) Quit()            {}

func TestRunReturnCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		app mockApp

		want int
	}{
		"Success":        {},
		"Runtime error":  {app: mockApp{runErr: errors.New("error requested")}, want: 1},
		"Usage error":    {app: mockApp{runErr: errors.New("error requested"), usageErr: true}, want: 2},
		"No error usage": {app: mockApp{usageErr: true}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, run(tc.app))
		})
	}
}
