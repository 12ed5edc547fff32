package common

import (
	"fmt"
	"io"

	"github.com/gltf-insight/animctl/cli/service"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/output"
	"github.com/spf13/cobra"
)

var Quiet = false

const (
	prettyFlag = "pretty"
	strictFlag = "strict"
)

type ReplyParams struct {
	Pretty bool
	Strict bool
}

func AddReplyFlags(cmd *cobra.Command, params *ReplyParams) {
	cmd.Flags().BoolVar(&params.Pretty, prettyFlag, false, "Indent JSON replies")
	cmd.Flags().BoolVar(&params.Strict, strictFlag, false, "Fail if the reply carries a JSON-RPC error")
}

// PrintReply writes the server reply to w and applies --strict.
func PrintReply(w io.Writer, reply string, params *ReplyParams) error {
	if !Quiet {
		_, _ = fmt.Fprint(w, output.CyanStr("Server reply: "))
	}
	_, _ = fmt.Fprintln(w, service.FormatResponse(reply, params.Pretty))

	if params.Strict {
		return service.CheckResponse(reply)
	}
	return nil
}
