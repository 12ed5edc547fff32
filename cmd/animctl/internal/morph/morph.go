package morph

import (
	"github.com/gltf-insight/animctl/cmd/animctl/internal/common"
	"github.com/gltf-insight/animctl/common/logging"
	"github.com/gltf-insight/animctl/core/types"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("morphCommand")

func GetCommand() *cobra.Command {
	var reply common.ReplyParams

	cmd := &cobra.Command{
		Use:          "morph ID:WEIGHT [ID:WEIGHT...]",
		Short:        "Set morph target weights",
		Example:      "  animctl morph 0:0.5 1:1",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			weights := make([]types.MorphWeight, 0, len(args))
			for _, arg := range args {
				w, err := types.ParseMorphWeight(arg)
				if err != nil {
					return err
				}
				logger.Debug().
					Uint32(logging.FieldTargetId, uint32(w.TargetId)).
					Float64("weight", float64(w.Weight)).
					Msg("Parsed morph weight")
				weights = append(weights, w)
			}

			res, err := common.GetService().UpdateMorphWeights(cmd.Context(), weights)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to update morph weights")
				return err
			}
			return common.PrintReply(cmd.OutOrStdout(), res, &reply)
		},
	}

	common.AddReplyFlags(cmd, &reply)

	return cmd
}
