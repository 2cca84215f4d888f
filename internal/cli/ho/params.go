package ho

import "yoho/internal/cli/paramutils"

var parseArgs = paramutils.ParseBranchArg
