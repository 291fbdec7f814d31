package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-cadence-keys/models"
)

// terminalPrompter prints the link hint instead of opening a dialog.
type terminalPrompter struct {
	out io.Writer
}

func newTerminalPrompter(out io.Writer) models.LinkPrompter {
	return &terminalPrompter{out: out}
}

func (p *terminalPrompter) PromptLink(_ context.Context, detection models.Detection) error {
	_, err := fmt.Fprintf(p.out,
		"\nThis device has no encryption key but your account already has data (%s).\n"+
			"Run `cadence link export` on a linked device, then `cadence link import` here and paste the key.\n"+
			"Run `cadence link dismiss` to stop this reminder.\n",
		detection.Reason)
	return err
}
