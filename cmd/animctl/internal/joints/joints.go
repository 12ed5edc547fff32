package joints

import (
	"fmt"

	"github.com/gltf-insight/animctl/cmd/animctl/internal/common"
	"github.com/gltf-insight/animctl/common/logging"
	"github.com/gltf-insight/animctl/core/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var logger = logging.NewLogger("jointsCommand")

const (
	additiveFlag  = "additive"
	componentFlag = "component"
)

type params struct {
	additive  bool
	component types.TransformComponent
	reply     common.ReplyParams
}

func GetCommand() *cobra.Command {
	p := &params{component: types.ComponentRotationAngle}

	cmd := &cobra.Command{
		Use:   "joints ID:X,Y,Z [ID:X,Y,Z...]",
		Short: "Set joint transforms of the loaded skin",
		Long: `Set joint transforms of the loaded skin.

Each argument names a joint and the component values. By default the values
are Euler XYZ rotation angles in degrees; --component selects translation,
scale or a quaternion rotation (ID:X,Y,Z,W) instead.`,
		Example: "  animctl joints 1:0,0,45\n  animctl joints --additive --component translation 2:0,0.1,0",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, p)
		},
		SilenceUsage: true,
	}

	setFlags(cmd, p)

	return cmd
}

func setFlags(cmd *cobra.Command, p *params) {
	cmd.Flags().BoolVar(&p.additive, additiveFlag, false, "Apply the transforms on top of the current pose")
	cmd.Flags().Var(newComponentValue(&p.component), componentFlag,
		"Transform component: rotation_angle|translation|scale|rotation")
	common.AddReplyFlags(cmd, &p.reply)
}

func runCommand(cmd *cobra.Command, args []string, p *params) error {
	transforms := make([]types.JointTransform, 0, len(args))
	for _, arg := range args {
		t, err := types.ParseJointTransform(arg, p.component)
		if err != nil {
			return err
		}
		logger.Debug().
			Uint32(logging.FieldJointId, uint32(t.JointId)).
			Stringer("component", p.component).
			Msg("Parsed joint transform")
		transforms = append(transforms, t)
	}

	reply, err := common.GetService().UpdateJoints(cmd.Context(), transforms, p.additive)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to update joints")
		return err
	}
	return common.PrintReply(cmd.OutOrStdout(), reply, &p.reply)
}

type componentValue struct {
	component *types.TransformComponent
}

var _ pflag.Value = (*componentValue)(nil)

func newComponentValue(c *types.TransformComponent) *componentValue {
	return &componentValue{component: c}
}

func (v *componentValue) String() string {
	return v.component.String()
}

func (v *componentValue) Set(s string) error {
	for _, c := range []types.TransformComponent{
		types.ComponentRotationAngle,
		types.ComponentTranslation,
		types.ComponentScale,
		types.ComponentRotation,
	} {
		if c.String() == s {
			*v.component = c
			return nil
		}
	}
	return fmt.Errorf("unknown component %q", s)
}

func (v *componentValue) Type() string {
	return "component"
}
