package yo

import "yoho/internal/cli/paramutils"

type cmdParams struct {
	Open bool
}

func fillFlagYoCmdParams(flags paramutils.FlagSet, params *cmdParams) {
	params.Open = flags.GetBoolOrDefault("open", params.Open)
}
