package send

import (
	"github.com/gltf-insight/animctl/cmd/animctl/internal/common"
	"github.com/gltf-insight/animctl/common/logging"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("sendCommand")

func GetCommand() *cobra.Command {
	var reply common.ReplyParams

	cmd := &cobra.Command{
		Use:   "send FILE",
		Short: "Send update params read from a JSON or YAML file",
		Long: `Send update params read from a JSON or YAML file ("-" reads JSON from stdin).

The file holds either the params object, e.g.
  {"morph_weights": [{"target_id": 0, "weight": 0.5}]}
or a complete "update" request.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := common.GetService().SendParamsFile(cmd.Context(), args[0])
			if err != nil {
				logger.Error().Err(err).Str(logging.FieldParamsFile, args[0]).Msg("Failed to send update")
				return err
			}
			return common.PrintReply(cmd.OutOrStdout(), res, &reply)
		},
	}

	common.AddReplyFlags(cmd, &reply)

	return cmd
}
